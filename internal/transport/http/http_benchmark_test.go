//go:build !integration

package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/usecase"
	"github.com/Gunvolt24/carb_validation/pkg/validate"
)

// --- Бенчмарки ---

// Серверная функция на реальном предикате: LEAN vs FULL пайплайн
func BenchmarkHTTP_RunFunction(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("lines=%d", n), func(b *testing.B) {
			h := newBenchHandler()
			body := functionInputBody(n)

			b.Run("lean/no-mw", func(b *testing.B) {
				benchServePOST(b, makeLeanRouter(h), "/validations/run", body)
			})
			b.Run("full/prod-mw", func(b *testing.B) {
				benchServePOST(b, makeFullRouter(h), "/validations/run", body)
			})
		})
	}
}

// Клиентская проверка: каталог в памяти, половина товаров без тегов соответствия
func BenchmarkHTTP_ValidateCheckout(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("lines=%d", n), func(b *testing.B) {
			benchServePOST(b, makeFullRouter(newBenchHandler()), "/checkout/validate", checkoutBody(n))
		})
	}
}

// --- функции-помощники ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// memCatalog: каталог без БД: чётные варианты соответствуют, нечётные нет.
type memCatalog struct{}

func (memCatalog) LookupVariants(_ context.Context, ids []string) (map[string]*domain.VariantCompliance, error) {
	out := make(map[string]*domain.VariantCompliance, len(ids))
	for i, id := range ids {
		v := &domain.VariantCompliance{VariantID: id, Title: "Part " + id}
		if i%2 == 0 {
			v.Tags = []string{"EPA:Compliant"}
		}
		out[id] = v
	}
	return out, nil
}

func (memCatalog) GetVariant(context.Context, string) (*domain.VariantCompliance, error) {
	return nil, nil
}

func (memCatalog) RecentVariants(context.Context, int) ([]*domain.VariantCompliance, error) {
	return nil, nil
}

func newBenchHandler() *Handler {
	log := nopLogger{}
	cv := validate.NewCartValidator(validate.PolicyAggregate, nil)
	return NewHandler(
		usecase.NewFunctionService(cv, log),
		usecase.NewCheckoutService(memCatalog{}, cv, log),
		memCatalog{},
		log,
		0,
	)
}

func functionInputBody(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"cart":{"lines":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"quantity":1,"merchandise":{"__typename":"ProductVariant","id":"v%d","product":{"title":"Part %d","hasAnyTag":%t}}}`, i, i, i%2 == 0)
	}
	sb.WriteString(`],"deliveryGroups":[{"deliveryAddress":{"countryCode":"US","provinceCode":"CA"}}]},"buyerJourney":{"step":"CHECKOUT_INTERACTION"}}`)
	return sb.String()
}

func checkoutBody(n int) string {
	var sb strings.Builder
	sb.WriteString(`{"lines":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"merchandiseId":"v%d","quantity":1}`, i)
	}
	sb.WriteString(`],"shippingAddress":{"countryCode":"US","provinceCode":"CA"},"canBlockProgress":true}`)
	return sb.String()
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger
	r.POST("/validations/run", h.runFunction)
	r.POST("/checkout/validate", h.validateCheckout)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return NewRouter(h, "")
}

func benchServePOST(b *testing.B, r *gin.Engine, path, body string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
