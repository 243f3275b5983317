package sku

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"procura/internal/matching"
	"procura/internal/port"
)

// CodeGenerator deterministically derives a canonical SKU code from the
// category, supplier short code, and normalized product/unit tuple. The same
// tuple always yields the same code, so concurrent resolutions converge on
// one SKU instead of minting duplicates.
type CodeGenerator struct{}

// NewCodeGenerator creates the default deterministic code generator.
func NewCodeGenerator() port.SkuCodeGenerator {
	return &CodeGenerator{}
}

func (g *CodeGenerator) Generate(_ context.Context, input port.SkuCodeInput) (string, error) {
	if input.SupplierShortCode == "" {
		return "", fmt.Errorf("supplier short code is empty")
	}
	key := matching.NormalizeText(input.ProductName) + "|" + matching.NormalizeUnit(input.Unit)
	sum := sha1.Sum([]byte(key))
	digest := strings.ToUpper(hex.EncodeToString(sum[:3]))
	return fmt.Sprintf("%s-%s-%s", input.Category, input.SupplierShortCode, digest), nil
}
