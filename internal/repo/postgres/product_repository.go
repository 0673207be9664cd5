package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository: реализация каталога соответствия на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository: конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const selectVariantColumns = `SELECT variant_id, product_id, title, tags, updated_at FROM product_variants`

// Save: идемпотентный upsert по variant_id. Более старое обновление не затирает новое.
func (r *ProductRepository) Save(ctx context.Context, v *domain.VariantCompliance) error {
	if v == nil || v.VariantID == "" {
		return errors.New("variant is empty or variant_id is required")
	}

	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO product_variants (variant_id, product_id, title, tags, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (variant_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			title = EXCLUDED.title,
			tags = EXCLUDED.tags,
			updated_at = EXCLUDED.updated_at
		WHERE product_variants.updated_at <= EXCLUDED.updated_at
	`, v.VariantID, v.ProductID, v.Title, tags, v.UpdatedAt); err != nil {
		return fmt.Errorf("upsert variant: %w", err)
	}
	return nil
}

// GetByVariantID: запись по variant_id. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) GetByVariantID(ctx context.Context, variantID string) (*domain.VariantCompliance, error) {
	var v domain.VariantCompliance
	err := r.pool.QueryRow(ctx, selectVariantColumns+` WHERE variant_id = $1`, variantID).
		Scan(&v.VariantID, &v.ProductID, &v.Title, &v.Tags, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select variant: %w", err)
	}
	return &v, nil
}

// GetByVariantIDs: пакетный поиск одним запросом; ключ результата: variant_id.
func (r *ProductRepository) GetByVariantIDs(ctx context.Context, variantIDs []string) (map[string]*domain.VariantCompliance, error) {
	out := make(map[string]*domain.VariantCompliance, len(variantIDs))
	if len(variantIDs) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, selectVariantColumns+` WHERE variant_id = ANY($1)`, variantIDs)
	if err != nil {
		return nil, fmt.Errorf("select variants: %w", err)
	}
	list, err := scanVariants(rows)
	if err != nil {
		return nil, err
	}
	for _, v := range list {
		out[v.VariantID] = v
	}
	return out, nil
}

// LastUpdated: последние N обновлённых записей (для прогрева кэша).
func (r *ProductRepository) LastUpdated(ctx context.Context, n int) ([]*domain.VariantCompliance, error) {
	if n <= 0 {
		return []*domain.VariantCompliance{}, nil
	}
	rows, err := r.pool.Query(ctx, selectVariantColumns+`
		ORDER BY updated_at DESC, variant_id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last variants: %w", err)
	}
	return scanVariants(rows)
}

func scanVariants(rows pgx.Rows) ([]*domain.VariantCompliance, error) {
	defer rows.Close()

	var list []*domain.VariantCompliance
	for rows.Next() {
		v := &domain.VariantCompliance{}
		if err := rows.Scan(&v.VariantID, &v.ProductID, &v.Title, &v.Tags, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("variants rows: %w", err)
	}
	return list, nil
}
