package domain

import "time"

// VariantCompliance: запись каталога: вариант продукта, его название и теги.
type VariantCompliance struct {
	VariantID string    `json:"variant_id"`
	ProductID string    `json:"product_id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}
