package ports

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// ProductValidator: проверка входящих записей каталога.
type ProductValidator interface {
	Validate(ctx context.Context, variant *domain.VariantCompliance) error
}

// CartValidator: проверка корзины на ограничения CARB.
type CartValidator interface {
	Validate(ctx context.Context, cart *domain.Cart) []domain.ValidationError
	// TagsCompliant: приводит теги продукта к признаку соответствия.
	TagsCompliant(tags []string) bool
}
