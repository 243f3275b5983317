package port

import (
	"context"

	"procura/internal/domain"
)

// SkuCodeInput is the tuple a code generator derives a canonical code from.
type SkuCodeInput struct {
	Category          string
	SupplierShortCode string
	ProductName       string
	Unit              string
}

// SkuCodeGenerator deterministically derives a canonical SKU code. When the
// generator is unavailable the resolver falls back to a locally synthesized
// code, so implementations may fail without blocking resolution.
type SkuCodeGenerator interface {
	Generate(ctx context.Context, input SkuCodeInput) (string, error)
}

// TrackableGoodsPredicate decides whether a line item refers to a trackable
// physical good that deserves a SKU (as opposed to services, freight charges
// and the like).
type TrackableGoodsPredicate interface {
	IsTrackable(item domain.ResolveItem) bool
}
