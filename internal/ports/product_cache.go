package ports

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// ProductCache: интерфейс кэша записей соответствия.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type ProductCache interface {
	// Get: (variant, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, variantID string) (*domain.VariantCompliance, bool)

	// Set: сохранить/обновить запись в кэше.
	Set(ctx context.Context, variant *domain.VariantCompliance) error

	// WarmUp: массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, variants []*domain.VariantCompliance) error
}
