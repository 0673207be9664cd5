package domain

// BuyerJourneyStep: этап оформления заказа.
type BuyerJourneyStep string

const (
	StepCartInteraction     BuyerJourneyStep = "CART_INTERACTION"
	StepCheckoutInteraction BuyerJourneyStep = "CHECKOUT_INTERACTION"
	StepCheckoutCompletion  BuyerJourneyStep = "CHECKOUT_COMPLETION"
)

// BuyerJourney: состояние пути покупателя.
type BuyerJourney struct {
	Step BuyerJourneyStep
}

// FunctionInput: вход серверной функции валидации.
// BuyerJourney == nil: вызов без гейта по этапу (функция выполняется всегда).
type FunctionInput struct {
	Cart         Cart
	BuyerJourney *BuyerJourney
}

// ValidationAdd: операция добавления ошибок валидации.
type ValidationAdd struct {
	Errors []ValidationError `json:"errors"`
}

// Operation: операция ответа серверной функции.
type Operation struct {
	ValidationAdd *ValidationAdd `json:"validationAdd,omitempty"`
}

// FunctionResult: ответ серверной функции.
// Пустой список операций («функция не запускалась») отличается от операции с пустыми ошибками.
type FunctionResult struct {
	Operations []Operation `json:"operations"`
}

// CheckoutLine: строка корзины на стороне клиента: только идентификатор товара и количество.
type CheckoutLine struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// ShippingAddress: адрес доставки на стороне клиента; коды могут быть пустыми.
type ShippingAddress struct {
	CountryCode  string `json:"countryCode"`
	ProvinceCode string `json:"provinceCode"`
}

// CheckoutRequest: вход клиентской проверки.
type CheckoutRequest struct {
	Lines            []CheckoutLine   `json:"lines"`
	ShippingAddress  *ShippingAddress `json:"shippingAddress"`
	CanBlockProgress bool             `json:"canBlockProgress"`
}

// InterceptBehavior: решение о продвижении по чекауту.
type InterceptBehavior string

const (
	BehaviorAllow InterceptBehavior = "allow"
	BehaviorBlock InterceptBehavior = "block"
)

// BlockReason: причина блокировки, которую видит платформа.
const BlockReason = "Shipping restrictions"

// InterceptDecision: итог перехвата шага чекаута.
type InterceptDecision struct {
	Behavior InterceptBehavior `json:"behavior"`
	Reason   string            `json:"reason,omitempty"`
}

// CheckoutResult: результат клиентской проверки.
type CheckoutResult struct {
	Errors    []ValidationError `json:"errors"`
	HasErrors bool              `json:"hasErrors"`
	Intercept InterceptDecision `json:"intercept"`
}
