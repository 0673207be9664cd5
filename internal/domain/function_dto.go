package domain

// DTO входа серверной функции в формате хоста (camelCase, как в GraphQL-ответе).
// Схема принадлежит хосту: поля, которых здесь нет, при разборе игнорируются.

// FunctionInputDTO: корень входа функции.
type FunctionInputDTO struct {
	Cart         CartDTO          `json:"cart"`
	BuyerJourney *BuyerJourneyDTO `json:"buyerJourney,omitempty"`
}

// BuyerJourneyDTO: шаг пути покупателя.
type BuyerJourneyDTO struct {
	Step string `json:"step"`
}

// CartDTO: корзина хоста.
type CartDTO struct {
	Lines          []CartLineDTO      `json:"lines"`
	DeliveryGroups []DeliveryGroupDTO `json:"deliveryGroups"`
}

// CartLineDTO: строка корзины.
type CartLineDTO struct {
	Quantity    int             `json:"quantity"`
	Merchandise *MerchandiseDTO `json:"merchandise"`
}

// MerchandiseDTO: товар строки; __typename отличает вариант от кастомной позиции.
type MerchandiseDTO struct {
	Typename string      `json:"__typename"`
	ID       string      `json:"id,omitempty"`
	Product  *ProductDTO `json:"product,omitempty"`
}

// ProductDTO: продукт варианта с признаками соответствия.
type ProductDTO struct {
	Title     string        `json:"title,omitempty"`
	HasAnyTag *bool         `json:"hasAnyTag,omitempty"`
	Metafield *MetafieldDTO `json:"metafield,omitempty"`
}

// MetafieldDTO: метаполе CARB; Value == nil, если метаполе не задано.
type MetafieldDTO struct {
	Value *string `json:"value"`
}

// DeliveryGroupDTO: группа доставки.
type DeliveryGroupDTO struct {
	DeliveryAddress *DeliveryAddressDTO `json:"deliveryAddress"`
}

// DeliveryAddressDTO: адрес доставки в кодах ISO.
type DeliveryAddressDTO struct {
	CountryCode  string `json:"countryCode"`
	ProvinceCode string `json:"provinceCode"`
}

// TypenameCustomProduct: __typename кастомной позиции у хоста.
const TypenameCustomProduct = "CustomProduct"

// ToDomain: переводит DTO в доменную модель. Исходный DTO не изменяется.
func (in *FunctionInputDTO) ToDomain() FunctionInput {
	out := FunctionInput{Cart: in.Cart.ToDomain()}
	if in.BuyerJourney != nil {
		out.BuyerJourney = &BuyerJourney{Step: BuyerJourneyStep(in.BuyerJourney.Step)}
	}
	return out
}

// ToDomain: перевод корзины.
func (c *CartDTO) ToDomain() Cart {
	cart := Cart{
		Lines:          make([]CartLine, 0, len(c.Lines)),
		DeliveryGroups: make([]DeliveryGroup, 0, len(c.DeliveryGroups)),
	}
	for i := range c.Lines {
		cart.Lines = append(cart.Lines, CartLine{
			Quantity:    c.Lines[i].Quantity,
			Merchandise: c.Lines[i].Merchandise.toDomain(),
		})
	}
	for _, g := range c.DeliveryGroups {
		group := DeliveryGroup{}
		if g.DeliveryAddress != nil {
			group.DeliveryAddress = &DeliveryAddress{
				CountryCode:  g.DeliveryAddress.CountryCode,
				ProvinceCode: g.DeliveryAddress.ProvinceCode,
			}
		}
		cart.DeliveryGroups = append(cart.DeliveryGroups, group)
	}
	return cart
}

func (m *MerchandiseDTO) toDomain() Merchandise {
	if m == nil {
		return nil
	}
	if m.Typename == TypenameCustomProduct {
		return CustomProduct{}
	}
	variant := ProductVariant{ID: m.ID}
	if m.Product != nil {
		variant.Product = &Product{
			Title:  m.Product.Title,
			Signal: m.Product.signal(),
		}
	}
	return variant
}

// signal: hasAnyTag имеет приоритет над метаполем; если нет ни того ни другого: nil.
func (p *ProductDTO) signal() ComplianceSignal {
	switch {
	case p.HasAnyTag != nil:
		return TagSignal{HasAnyTag: *p.HasAnyTag}
	case p.Metafield != nil && p.Metafield.Value != nil:
		return MetafieldSignal{Value: *p.Metafield.Value}
	default:
		return nil
	}
}
