//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeVariant: мини-генератор валидной записи каталога.
func MakeVariant(opts ...func(*domain.VariantCompliance)) domain.VariantCompliance {
	suffix := UniqSuffix()
	v := domain.VariantCompliance{
		VariantID: "gid://shopify/ProductVariant/" + suffix,
		ProductID: "gid://shopify/Product/" + suffix,
		Title:     "Cold Air Intake " + suffix,
		Tags:      []string{"EPA:Compliant", "intake"},
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// WithTags: задать теги.
func WithTags(tags ...string) func(*domain.VariantCompliance) {
	return func(v *domain.VariantCompliance) { v.Tags = tags }
}

// WithTitle: задать название.
func WithTitle(title string) func(*domain.VariantCompliance) {
	return func(v *domain.VariantCompliance) { v.Title = title }
}
