package validate

import (
	"context"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
)

// Проверка, что CartValidator удовлетворяет интерфейсу CartValidator.
var _ ports.CartValidator = (*CartValidator)(nil)

// CartValidator: проверка корзины на ограничения CARB с выбранной политикой сообщений.
// Сам предикат (Evaluate) чистый; метрики пишутся здесь.
type CartValidator struct {
	policy  MessagePolicy
	matcher *TagMatcher
}

// NewCartValidator: конструктор; пустой список тегов → DefaultCompliantTags.
func NewCartValidator(policy MessagePolicy, compliantTags []string) *CartValidator {
	if policy != PolicyGeneric {
		policy = PolicyAggregate
	}
	return &CartValidator{policy: policy, matcher: NewTagMatcher(compliantTags)}
}

// Policy: текущая политика сообщений.
func (v *CartValidator) Policy() MessagePolicy { return v.policy }

// Validate: вызывает Evaluate и фиксирует результат в метриках.
func (v *CartValidator) Validate(_ context.Context, cart *domain.Cart) []domain.ValidationError {
	start := time.Now()
	errs := Evaluate(cart, v.policy)
	metrics.CarbEvaluationDuration.Observe(time.Since(start).Seconds())

	switch {
	case !HasCaliforniaDeliveryAddress(cart):
		metrics.CarbEvaluations.WithLabelValues("not_applicable").Inc()
	case len(errs) == 0:
		metrics.CarbEvaluations.WithLabelValues("compliant").Inc()
	default:
		metrics.CarbEvaluations.WithLabelValues("non_compliant").Inc()
		metrics.CarbNonCompliantLines.Add(float64(len(NonCompliantProducts(cart))))
	}
	return errs
}

// TagsCompliant: проверка тегов по настроенному набору.
func (v *CartValidator) TagsCompliant(tags []string) bool { return v.matcher.Compliant(tags) }
