package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"procura/internal/domain"
	"procura/internal/matching"
	"procura/internal/port"
)

const (
	defaultCreateBatchSize = 5
	shortCodeMaxLen        = 6
)

// SkuService finds or creates canonical product codes for line items.
type SkuService interface {
	// ResolveBatch resolves every unlinked, trackable item for one supplier.
	// Individual failures are counted, not fatal; rerunning is idempotent
	// because existing SKUs are found by lookup first.
	ResolveBatch(ctx context.Context, supplierID uuid.UUID, items []domain.ResolveItem) (*domain.ResolveReport, error)
	// Resolve finds or creates the SKU for a single item.
	Resolve(ctx context.Context, item domain.ResolveItem, supplier *domain.Supplier) (string, error)
}

type skuService struct {
	skus      port.SkuRepository
	suppliers port.SupplierRepository
	generator port.SkuCodeGenerator
	trackable port.TrackableGoodsPredicate
	category  string
	batchSize int
}

// NewSkuService creates a SkuService. category is the SKU category assigned
// to codes created by this pipeline.
func NewSkuService(
	skus port.SkuRepository,
	suppliers port.SupplierRepository,
	generator port.SkuCodeGenerator,
	trackable port.TrackableGoodsPredicate,
	category string,
	batchSize int,
) SkuService {
	if batchSize <= 0 {
		batchSize = defaultCreateBatchSize
	}
	return &skuService{
		skus:      skus,
		suppliers: suppliers,
		generator: generator,
		trackable: trackable,
		category:  category,
		batchSize: batchSize,
	}
}

func (s *skuService) ResolveBatch(ctx context.Context, supplierID uuid.UUID, items []domain.ResolveItem) (*domain.ResolveReport, error) {
	filtered := make([]domain.ResolveItem, 0, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.SkuCode != "" || !s.trackable.IsTrackable(item) {
			continue
		}
		filtered = append(filtered, item)
		names = append(names, item.ProductName)
	}

	report := &domain.ResolveReport{}
	if len(filtered) == 0 {
		return report, nil
	}

	existing, err := s.skus.FindByNames(ctx, supplierID, names)
	if err != nil {
		return nil, fmt.Errorf("looking up existing skus: %w", err)
	}
	byKey := make(map[string]string, len(existing))
	for _, sku := range existing {
		byKey[skuKey(sku.ProductName, sku.Unit)] = sku.Code
	}

	var toCreate []domain.ResolveItem
	type link struct {
		itemID uuid.UUID
		code   string
	}
	var toLink []link
	for _, item := range filtered {
		if code, ok := byKey[skuKey(item.ProductName, item.Unit)]; ok {
			toLink = append(toLink, link{itemID: item.ID, code: code})
		} else {
			toCreate = append(toCreate, item)
		}
	}

	// Links have no ordering dependency between them.
	var mu sync.Mutex
	var g errgroup.Group
	for _, l := range toLink {
		g.Go(func() error {
			if err := s.skus.LinkItem(ctx, l.itemID, l.code); err != nil {
				log.Printf("skuService: linking item %s to %s: %v", l.itemID, l.code, err)
				mu.Lock()
				report.Failed++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			report.Linked++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(toCreate) == 0 {
		return report, nil
	}

	supplier, err := s.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("loading supplier: %w", err)
	}
	if err := s.ensureShortCode(ctx, supplier); err != nil {
		return nil, err
	}

	// Bounded batches keep concurrent inserts from stampeding the unique
	// constraint on the code column.
	for start := 0; start < len(toCreate); start += s.batchSize {
		end := start + s.batchSize
		if end > len(toCreate) {
			end = len(toCreate)
		}

		var bg errgroup.Group
		for _, item := range toCreate[start:end] {
			bg.Go(func() error {
				_, created, err := s.createAndLink(ctx, item, supplier)
				if err != nil {
					log.Printf("skuService: creating sku for %q: %v", item.ProductName, err)
					mu.Lock()
					report.Failed++
					mu.Unlock()
					return nil
				}
				mu.Lock()
				if created {
					report.Created++
				} else {
					report.Linked++
				}
				mu.Unlock()
				return nil
			})
		}
		_ = bg.Wait()
	}

	return report, nil
}

func (s *skuService) Resolve(ctx context.Context, item domain.ResolveItem, supplier *domain.Supplier) (string, error) {
	existing, err := s.skus.FindByNames(ctx, supplier.ID, []string{item.ProductName})
	if err != nil {
		return "", fmt.Errorf("looking up existing skus: %w", err)
	}
	for _, sku := range existing {
		if skuKey(sku.ProductName, sku.Unit) == skuKey(item.ProductName, item.Unit) {
			if err := s.skus.LinkItem(ctx, item.ID, sku.Code); err != nil {
				return "", err
			}
			return sku.Code, nil
		}
	}

	if err := s.ensureShortCode(ctx, supplier); err != nil {
		return "", err
	}
	code, _, err := s.createAndLink(ctx, item, supplier)
	return code, err
}

// createAndLink inserts a new SKU record and links the originating item to
// it. If the deterministic code generator is unavailable, it falls back to a
// locally synthesized unique code so creation never blocks on the generator.
// A duplicate-code conflict means the same normalized product/unit tuple was
// created earlier under a different raw spelling (the name lookup matches raw
// text while the generator hashes the normalized tuple), so the item is
// linked to the existing code instead. The returned bool reports whether a
// new record was created.
func (s *skuService) createAndLink(ctx context.Context, item domain.ResolveItem, supplier *domain.Supplier) (string, bool, error) {
	code, err := s.generator.Generate(ctx, port.SkuCodeInput{
		Category:          s.category,
		SupplierShortCode: supplier.ShortCode,
		ProductName:       item.ProductName,
		Unit:              item.Unit,
	})
	if err != nil {
		code = fmt.Sprintf("%s-%s-%d", s.category, supplier.ShortCode, time.Now().UnixMilli())
		log.Printf("skuService: code generator unavailable (%v), falling back to %s", err, code)
	}

	price := decimal.Zero
	if item.UnitPrice != nil {
		price = *item.UnitPrice
	}
	supplierID := supplier.ID
	sku := &domain.SkuRecord{
		Code:        code,
		ProductName: item.ProductName,
		Unit:        item.Unit,
		UnitPrice:   price,
		SupplierID:  &supplierID,
		Category:    s.category,
	}
	created := true
	if err := s.skus.Create(ctx, sku); err != nil {
		if !errors.Is(err, domain.ErrDuplicateSkuCode) {
			return "", false, err
		}
		created = false
	}
	if err := s.skus.LinkItem(ctx, item.ID, code); err != nil {
		return "", false, err
	}
	return code, created, nil
}

// ensureShortCode derives and persists the supplier short code on first use:
// initials of each word for multi-word names, the first six characters
// otherwise, diacritics stripped and upper-cased.
func (s *skuService) ensureShortCode(ctx context.Context, supplier *domain.Supplier) error {
	if supplier.ShortCode != "" {
		return nil
	}
	supplier.ShortCode = DeriveShortCode(supplier.Name)
	if err := s.suppliers.UpdateShortCode(ctx, supplier.ID, supplier.ShortCode); err != nil {
		return fmt.Errorf("saving supplier short code: %w", err)
	}
	return nil
}

// DeriveShortCode builds a supplier short code from its name.
func DeriveShortCode(name string) string {
	stripped := strings.ToUpper(matching.StripDiacritics(strings.TrimSpace(name)))
	words := strings.Fields(stripped)
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		word := []rune(words[0])
		if len(word) > shortCodeMaxLen {
			word = word[:shortCodeMaxLen]
		}
		return string(word)
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteRune([]rune(w)[0])
		if b.Len() >= shortCodeMaxLen {
			break
		}
	}
	code := []rune(b.String())
	if len(code) > shortCodeMaxLen {
		code = code[:shortCodeMaxLen]
	}
	return string(code)
}

// skuKey builds the product/unit lookup key with normalized casing so OCR
// noise in letter case does not split identical products.
func skuKey(productName, unit string) string {
	return matching.NormalizeText(productName) + "|" + matching.NormalizeUnit(unit)
}
