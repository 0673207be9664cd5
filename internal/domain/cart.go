package domain

// TargetCart: путь, к которому привязываются ошибки валидации корзины.
const TargetCart = "$.cart"

// UnknownProductTitle: название товара, если оно не пришло или пустое.
const UnknownProductTitle = "Unknown Product"

// DeliveryAddress: адрес доставки. Формат кодов не проверяется, сравнение строгое.
type DeliveryAddress struct {
	CountryCode  string
	ProvinceCode string
}

// DeliveryGroup: группа доставки; адрес может отсутствовать.
type DeliveryGroup struct {
	DeliveryAddress *DeliveryAddress
}

// Cart: снимок корзины на момент одной проверки.
type Cart struct {
	Lines          []CartLine
	DeliveryGroups []DeliveryGroup
}

// CartLine: строка корзины.
type CartLine struct {
	Quantity    int
	Merchandise Merchandise
}

// Merchandise: товар строки: либо вариант продукта, либо кастомная позиция.
type Merchandise interface {
	isMerchandise()
}

// ProductVariant: вариант продукта. Product может быть nil, если хост его не прислал.
type ProductVariant struct {
	ID      string
	Product *Product
}

// CustomProduct: кастомная позиция без продукта, всегда считается соответствующей.
type CustomProduct struct{}

func (ProductVariant) isMerchandise() {}
func (CustomProduct) isMerchandise()  {}

// Product: продукт и его признак соответствия CARB.
type Product struct {
	Title  string
	Signal ComplianceSignal // nil: признак отсутствует
}

// ComplianceSignal: одно из двух несовместимых представлений признака соответствия.
type ComplianceSignal interface {
	isComplianceSignal()
}

// TagSignal: флаг «есть хотя бы один тег соответствия», вычисленный выше по списку тегов.
type TagSignal struct {
	HasAnyTag bool
}

// MetafieldSignal: значение метаполя; строка "true" означает НЕсоответствие.
type MetafieldSignal struct {
	Value string
}

func (TagSignal) isComplianceSignal()       {}
func (MetafieldSignal) isComplianceSignal() {}

// ValidationError: ошибка валидации, которую видит покупатель.
type ValidationError struct {
	Message string `json:"message"`
	Target  string `json:"target"`
}
