package usecase

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
)

const (
	boundaryFunction = "function"
	boundaryCheckout = "checkout"

	outcomeSkipped     = "skipped"
	outcomePassed      = "passed"
	outcomeFailed      = "failed"
	outcomeUnavailable = "unavailable"
)

// FunctionService: серверная точка вызова: гейт по этапу пути покупателя + предикат CARB.
type FunctionService struct {
	validator ports.CartValidator
	log       ports.Logger
}

// NewFunctionService: DI-конструктор.
func NewFunctionService(validator ports.CartValidator, log ports.Logger) *FunctionService {
	return &FunctionService{validator: validator, log: log}
}

// RunFunction: выполнить проверку корзины.
//   - этап указан и это не CHECKOUT_INTERACTION → пустой список операций, предикат не вызывается;
//   - иначе ровно одна операция validationAdd (ошибок может не быть).
func (s *FunctionService) RunFunction(ctx context.Context, input domain.FunctionInput) domain.FunctionResult {
	if input.BuyerJourney != nil && input.BuyerJourney.Step != domain.StepCheckoutInteraction {
		s.log.Infof(ctx, "function skipped step=%s", input.BuyerJourney.Step)
		metrics.CheckoutValidations.WithLabelValues(boundaryFunction, outcomeSkipped).Inc()
		return domain.FunctionResult{Operations: []domain.Operation{}}
	}

	errs := s.validator.Validate(ctx, &input.Cart)
	if errs == nil {
		errs = []domain.ValidationError{}
	}

	if len(errs) > 0 {
		s.log.Infof(ctx, "function validation failed lines=%d errors=%d", len(input.Cart.Lines), len(errs))
		metrics.CheckoutValidations.WithLabelValues(boundaryFunction, outcomeFailed).Inc()
	} else {
		metrics.CheckoutValidations.WithLabelValues(boundaryFunction, outcomePassed).Inc()
	}

	return domain.FunctionResult{
		Operations: []domain.Operation{
			{ValidationAdd: &domain.ValidationAdd{Errors: errs}},
		},
	}
}
