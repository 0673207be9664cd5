package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// MessagePolicy: формат ошибки при найденных несоответствующих товарах.
type MessagePolicy string

const (
	// PolicyAggregate: перечисляет все несоответствующие товары (каноническое поведение).
	PolicyAggregate MessagePolicy = "aggregate"
	// PolicyGeneric: одно общее сообщение независимо от количества товаров.
	PolicyGeneric MessagePolicy = "generic"
)

// ErrUnknownPolicy: неизвестное значение политики сообщений.
var ErrUnknownPolicy = errors.New("unknown message policy")

const (
	californiaCountryCode  = "US"
	californiaProvinceCode = "CA"

	aggregateMessageFormat = "The following products cannot be shipped to California due to CARB compliance restrictions: %s. " +
		"Please remove these products or choose a different shipping address."

	// GenericMessage: текст ошибки для PolicyGeneric.
	GenericMessage = "This product cannot be shipped to California due to CARB compliance restrictions. " +
		"Please remove the non-compliant product or choose a different shipping address."
)

// ParseMessagePolicy: разбор политики из конфигурации; пустая строка → PolicyAggregate.
func ParseMessagePolicy(s string) (MessagePolicy, error) {
	switch MessagePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAggregate:
		return PolicyAggregate, nil
	case PolicyGeneric:
		return PolicyGeneric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Evaluate: проверка корзины на ограничения CARB.
// Возвращает пустой (не nil) список либо ровно одну ошибку с target "$.cart".
// Чистая функция: вход не изменяется, побочных эффектов нет.
func Evaluate(cart *domain.Cart, policy MessagePolicy) []domain.ValidationError {
	errs := []domain.ValidationError{}

	if !HasCaliforniaDeliveryAddress(cart) {
		return errs
	}

	titles := NonCompliantProducts(cart)
	if len(titles) == 0 {
		return errs
	}

	return append(errs, domain.ValidationError{
		Message: message(policy, titles),
		Target:  domain.TargetCart,
	})
}

func message(policy MessagePolicy, titles []string) string {
	if policy == PolicyGeneric {
		return GenericMessage
	}
	return fmt.Sprintf(aggregateMessageFormat, strings.Join(titles, ", "))
}

// IsCaliforniaAddress: адрес в Калифорнии (US/CA, строгое сравнение).
func IsCaliforniaAddress(addr *domain.DeliveryAddress) bool {
	return addr != nil && addr.CountryCode == californiaCountryCode && addr.ProvinceCode == californiaProvinceCode
}

// HasCaliforniaDeliveryAddress: есть ли хотя бы одна группа доставки в Калифорнию.
func HasCaliforniaDeliveryAddress(cart *domain.Cart) bool {
	if cart == nil {
		return false
	}
	for i := range cart.DeliveryGroups {
		if IsCaliforniaAddress(cart.DeliveryGroups[i].DeliveryAddress) {
			return true
		}
	}
	return false
}

// NonCompliantProducts: названия несоответствующих товаров в порядке строк корзины.
// Кастомные позиции и варианты без продукта пропускаются.
func NonCompliantProducts(cart *domain.Cart) []string {
	if cart == nil {
		return nil
	}
	var titles []string
	for i := range cart.Lines {
		variant, ok := cart.Lines[i].Merchandise.(domain.ProductVariant)
		if !ok || variant.Product == nil {
			continue
		}
		if ResolveCompliance(variant.Product.Signal) {
			continue
		}
		titles = append(titles, productTitle(variant.Product))
	}
	return titles
}

// ResolveCompliance: приводит признак к bool.
// TagSignal: соответствует, если hasAnyTag; MetafieldSignal: НЕ соответствует только при "true";
// признак отсутствует: соответствует (fail-open).
func ResolveCompliance(signal domain.ComplianceSignal) bool {
	switch s := signal.(type) {
	case domain.TagSignal:
		return s.HasAnyTag
	case domain.MetafieldSignal:
		return s.Value != "true"
	default:
		return true
	}
}

func productTitle(p *domain.Product) string {
	if strings.TrimSpace(p.Title) == "" {
		return domain.UnknownProductTitle
	}
	return p.Title
}
