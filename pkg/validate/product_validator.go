package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct: базовая (sentinel error) ошибка валидации записи каталога.
var ErrInvalidProduct = errors.New("product validation failed")

// ProductValidator: проверка записи соответствия варианта.
type ProductValidator struct{}

// NewProductValidator: конструктор ProductValidator.
// Validate возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate: проверяет обязательные поля. Пустое название допустимо (подставится "Unknown Product").
func (v *ProductValidator) Validate(_ context.Context, variant *domain.VariantCompliance) error {
	if variant == nil {
		return fmt.Errorf("%w: запись не может быть nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(variant.VariantID) == "" {
		return fmt.Errorf("%w: variant_id обязателен", ErrInvalidProduct)
	}
	if strings.TrimSpace(variant.ProductID) == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidProduct)
	}
	for i, tag := range variant.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: tags[%d] не должен быть пустым", ErrInvalidProduct, i)
		}
	}
	return nil
}
