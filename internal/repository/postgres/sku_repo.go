package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"procura/internal/domain"
	"procura/internal/port"
)

type skuRepo struct {
	db *sqlx.DB
}

// NewSkuRepo creates a new PostgreSQL-backed SkuRepository.
func NewSkuRepo(db *sqlx.DB) port.SkuRepository {
	return &skuRepo{db: db}
}

func (r *skuRepo) FindByNames(ctx context.Context, supplierID uuid.UUID, names []string) ([]domain.SkuRecord, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		"SELECT * FROM skus WHERE supplier_id = ? AND product_name IN (?)",
		supplierID, names)
	if err != nil {
		return nil, fmt.Errorf("skuRepo.FindByNames build: %w", err)
	}
	query = r.db.Rebind(query)

	var skus []domain.SkuRecord
	if err := r.db.SelectContext(ctx, &skus, query, args...); err != nil {
		return nil, fmt.Errorf("skuRepo.FindByNames: %w", err)
	}
	return skus, nil
}

func (r *skuRepo) Create(ctx context.Context, sku *domain.SkuRecord) error {
	sku.CreatedAt = time.Now().UTC()

	query := `INSERT INTO skus
		(code, product_name, unit, unit_price, supplier_id, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		sku.Code, sku.ProductName, sku.Unit, sku.UnitPrice, sku.SupplierID, sku.Category, sku.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateSkuCode
		}
		return fmt.Errorf("skuRepo.Create: %w", err)
	}
	return nil
}

func (r *skuRepo) LinkItem(ctx context.Context, itemID uuid.UUID, skuCode string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE purchase_order_items SET sku_code = $1, updated_at = $2 WHERE id = $3",
		skuCode, time.Now().UTC(), itemID)
	if err != nil {
		return fmt.Errorf("skuRepo.LinkItem: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
