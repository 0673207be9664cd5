package usecase

import (
	"context"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/metrics"
)

// UnavailableMessage: текст синтетической ошибки, когда данные о товарах недоступны.
const UnavailableMessage = "Unable to validate CARB compliance. Please try again."

const (
	defaultCountryCode  = "US"
	defaultProvinceCode = "CA"
)

// CheckoutService: клиентская точка вызова: подтягивает теги товаров из каталога,
// собирает корзину и решает, блокировать ли продвижение по чекауту.
type CheckoutService struct {
	catalog   ports.ProductCatalog
	validator ports.CartValidator
	log       ports.Logger
}

// NewCheckoutService: DI-конструктор.
func NewCheckoutService(catalog ports.ProductCatalog, validator ports.CartValidator, log ports.Logger) *CheckoutService {
	return &CheckoutService{catalog: catalog, validator: validator, log: log}
}

// ValidateCheckout: проверка корзины чекаута. Ошибки каталога не пробрасываются,
// а превращаются в одну синтетическую ошибку валидации.
func (s *CheckoutService) ValidateCheckout(ctx context.Context, req *domain.CheckoutRequest) domain.CheckoutResult {
	errs := s.collectErrors(ctx, req)

	canBlock := req != nil && req.CanBlockProgress
	return domain.CheckoutResult{
		Errors:    errs,
		HasErrors: len(errs) > 0,
		Intercept: Intercept(canBlock, errs),
	}
}

func (s *CheckoutService) collectErrors(ctx context.Context, req *domain.CheckoutRequest) []domain.ValidationError {
	errs := []domain.ValidationError{}
	if req == nil || len(req.Lines) == 0 {
		return errs
	}

	ids := uniqueMerchandiseIDs(req.Lines)
	if len(ids) == 0 {
		return errs
	}

	variants, err := s.catalog.LookupVariants(ctx, ids)
	if err != nil {
		s.log.Warnf(ctx, "product lookup failed variants=%d err=%v", len(ids), err)
		metrics.CheckoutValidations.WithLabelValues(boundaryCheckout, outcomeUnavailable).Inc()
		return append(errs, domain.ValidationError{Message: UnavailableMessage, Target: domain.TargetCart})
	}
	if variants == nil {
		s.log.Warnf(ctx, "no product data received variants=%d", len(ids))
		return errs
	}

	cart := s.buildCart(req, variants)
	if found := s.validator.Validate(ctx, &cart); len(found) > 0 {
		metrics.CheckoutValidations.WithLabelValues(boundaryCheckout, outcomeFailed).Inc()
		return append(errs, found...)
	}
	metrics.CheckoutValidations.WithLabelValues(boundaryCheckout, outcomePassed).Inc()
	return errs
}

// buildCart: корзина для предиката. Не найденные в каталоге варианты считаются
// несоответствующими с названием "Unknown Product".
func (s *CheckoutService) buildCart(req *domain.CheckoutRequest, variants map[string]*domain.VariantCompliance) domain.Cart {
	cart := domain.Cart{Lines: make([]domain.CartLine, 0, len(req.Lines))}

	for _, line := range req.Lines {
		product := &domain.Product{
			Title:  domain.UnknownProductTitle,
			Signal: domain.TagSignal{HasAnyTag: false},
		}
		if v, ok := variants[line.MerchandiseID]; ok && v != nil {
			product = &domain.Product{
				Title:  v.Title,
				Signal: domain.TagSignal{HasAnyTag: s.validator.TagsCompliant(v.Tags)},
			}
		}
		cart.Lines = append(cart.Lines, domain.CartLine{
			Quantity:    line.Quantity,
			Merchandise: domain.ProductVariant{ID: line.MerchandiseID, Product: product},
		})
	}

	// пустые коды адреса трактуются как US/CA
	if addr := req.ShippingAddress; addr != nil {
		country, province := addr.CountryCode, addr.ProvinceCode
		if country == "" {
			country = defaultCountryCode
		}
		if province == "" {
			province = defaultProvinceCode
		}
		cart.DeliveryGroups = []domain.DeliveryGroup{{
			DeliveryAddress: &domain.DeliveryAddress{CountryCode: country, ProvinceCode: province},
		}}
	}
	return cart
}

// Intercept: блокируем, только если платформа это позволяет и есть ошибки; иначе пропускаем.
func Intercept(canBlockProgress bool, errs []domain.ValidationError) domain.InterceptDecision {
	if canBlockProgress && len(errs) > 0 {
		return domain.InterceptDecision{Behavior: domain.BehaviorBlock, Reason: domain.BlockReason}
	}
	return domain.InterceptDecision{Behavior: domain.BehaviorAllow}
}

// uniqueMerchandiseIDs: уникальные непустые идентификаторы в порядке первого появления.
func uniqueMerchandiseIDs(lines []domain.CheckoutLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.MerchandiseID == "" {
			continue
		}
		if _, ok := seen[line.MerchandiseID]; ok {
			continue
		}
		seen[line.MerchandiseID] = struct{}{}
		ids = append(ids, line.MerchandiseID)
	}
	return ids
}
