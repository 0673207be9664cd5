package ports

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// ProductRepository: хранилище записей соответствия вариантов.
type ProductRepository interface {
	Save(ctx context.Context, variant *domain.VariantCompliance) error
	// GetByVariantID: (nil, nil), если записи нет.
	GetByVariantID(ctx context.Context, variantID string) (*domain.VariantCompliance, error)
	// GetByVariantIDs: только найденные записи, ключ: variant_id.
	GetByVariantIDs(ctx context.Context, variantIDs []string) (map[string]*domain.VariantCompliance, error)
	LastUpdated(ctx context.Context, n int) ([]*domain.VariantCompliance, error)
}
