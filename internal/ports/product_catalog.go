package ports

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// ProductCatalog: поиск данных о товарах по идентификаторам вариантов.
// Ошибка означает, что данные недоступны; nil-результат без ошибки: данных нет вовсе.
type ProductCatalog interface {
	LookupVariants(ctx context.Context, variantIDs []string) (map[string]*domain.VariantCompliance, error)
}

// ProductReadService: чтение каталога для HTTP-слоя.
type ProductReadService interface {
	GetVariant(ctx context.Context, variantID string) (*domain.VariantCompliance, error)
	RecentVariants(ctx context.Context, limit int) ([]*domain.VariantCompliance, error)
}
