package ports

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

// FunctionRunner: серверная точка вызова проверки.
type FunctionRunner interface {
	RunFunction(ctx context.Context, input domain.FunctionInput) domain.FunctionResult
}

// CheckoutChecker: клиентская точка вызова проверки.
type CheckoutChecker interface {
	ValidateCheckout(ctx context.Context, req *domain.CheckoutRequest) domain.CheckoutResult
}
