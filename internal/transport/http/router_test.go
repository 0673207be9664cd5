package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports/mocks"
	rest "github.com/Gunvolt24/carb_validation/internal/transport/http"
	"github.com/Gunvolt24/carb_validation/pkg/ctxmeta"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type fixture struct {
	function *mocks.MockFunctionRunner
	checkout *mocks.MockCheckoutChecker
	catalog  *mocks.MockProductReadService
	router   http.Handler
}

func newFixture(t *testing.T, timeout time.Duration) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		function: mocks.NewMockFunctionRunner(ctrl),
		checkout: mocks.NewMockCheckoutChecker(ctrl),
		catalog:  mocks.NewMockProductReadService(ctrl),
	}
	h := rest.NewHandler(f.function, f.checkout, f.catalog, noopLogger{}, timeout)
	f.router = rest.NewRouter(h, "")
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

const functionInputCA = `{
  "cart": {
    "lines": [
      {"quantity": 1, "merchandise": {"__typename": "ProductVariant", "id": "v1",
        "product": {"title": "Turbo Kit", "hasAnyTag": false}}},
      {"quantity": 2, "merchandise": {"__typename": "CustomProduct"}}
    ],
    "deliveryGroups": [{"deliveryAddress": {"countryCode": "US", "provinceCode": "CA"}}]
  },
  "buyerJourney": {"step": "CHECKOUT_INTERACTION"}
}`

func TestRunFunction_DecodesAndDelegates(t *testing.T) {
	f := newFixture(t, time.Second)

	result := domain.FunctionResult{Operations: []domain.Operation{{
		ValidationAdd: &domain.ValidationAdd{Errors: []domain.ValidationError{{Message: "m", Target: domain.TargetCart}}},
	}}}

	f.function.EXPECT().RunFunction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in domain.FunctionInput) domain.FunctionResult {
			if b, _ := ctxmeta.BoundaryFromContext(ctx); b != ctxmeta.BoundaryFunction {
				t.Errorf("boundary=%q, want function", b)
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("handler context must have a deadline")
			}
			want := domain.FunctionInput{
				Cart: domain.Cart{
					Lines: []domain.CartLine{
						{Quantity: 1, Merchandise: domain.ProductVariant{ID: "v1", Product: &domain.Product{
							Title: "Turbo Kit", Signal: domain.TagSignal{HasAnyTag: false},
						}}},
						{Quantity: 2, Merchandise: domain.CustomProduct{}},
					},
					DeliveryGroups: []domain.DeliveryGroup{{DeliveryAddress: &domain.DeliveryAddress{CountryCode: "US", ProvinceCode: "CA"}}},
				},
				BuyerJourney: &domain.BuyerJourney{Step: domain.StepCheckoutInteraction},
			}
			if diff := cmp.Diff(want, in); diff != "" {
				t.Errorf("input mismatch (-want +got):\n%s", diff)
			}
			return result
		})

	w := f.do(http.MethodPost, "/validations/run", functionInputCA)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var got domain.FunctionResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if diff := cmp.Diff(result, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFunction_EmptyOperationsSerialized(t *testing.T) {
	f := newFixture(t, 0)
	f.function.EXPECT().RunFunction(gomock.Any(), gomock.Any()).
		Return(domain.FunctionResult{Operations: []domain.Operation{}})

	w := f.do(http.MethodPost, "/validations/run", `{"cart":{"lines":[],"deliveryGroups":[]},"buyerJourney":{"step":"CART_INTERACTION"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"operations":[]}` {
		t.Fatalf("body=%s, want {\"operations\":[]}", got)
	}
}

func TestRunFunction_BadJSON_400(t *testing.T) {
	f := newFixture(t, 0)

	for _, body := range []string{`{"cart":`, `[]`, `{"cart":{}} {}`} {
		w := f.do(http.MethodPost, "/validations/run", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: want 400, got %d", body, w.Code)
		}
	}
}

// Поля, которые хост добавил в запрос функции, не мешают проверке.
func TestRunFunction_HostExtraFields(t *testing.T) {
	f := newFixture(t, 0)

	want := domain.FunctionInput{
		Cart: domain.Cart{
			Lines: []domain.CartLine{{
				Quantity: 1,
				Merchandise: domain.ProductVariant{
					ID:      "gid://shopify/ProductVariant/1",
					Product: &domain.Product{Title: "Performance Exhaust", Signal: domain.TagSignal{HasAnyTag: false}},
				},
			}},
			DeliveryGroups: []domain.DeliveryGroup{{
				DeliveryAddress: &domain.DeliveryAddress{CountryCode: "US", ProvinceCode: "CA"},
			}},
		},
		BuyerJourney: &domain.BuyerJourney{Step: domain.StepCheckoutInteraction},
	}
	f.function.EXPECT().RunFunction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.FunctionInput) domain.FunctionResult {
			if diff := cmp.Diff(want, in); diff != "" {
				t.Errorf("input mismatch (-want +got):\n%s", diff)
			}
			return domain.FunctionResult{Operations: []domain.Operation{{ValidationAdd: &domain.ValidationAdd{Errors: []domain.ValidationError{}}}}}
		})

	body := `{"cart":{"lines":[{"quantity":1,"merchandise":{"__typename":"ProductVariant","id":"gid://shopify/ProductVariant/1",` +
		`"sku":"EX-1","product":{"id":"gid://shopify/Product/1","title":"Performance Exhaust","hasAnyTag":false}}}],` +
		`"deliveryGroups":[{"deliveryAddress":{"countryCode":"US","provinceCode":"CA"}}]},` +
		`"buyerJourney":{"step":"CHECKOUT_INTERACTION"}}`
	if w := f.do(http.MethodPost, "/validations/run", body); w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestValidateCheckout_Delegates(t *testing.T) {
	f := newFixture(t, time.Second)

	want := domain.CheckoutResult{
		Errors:    []domain.ValidationError{{Message: "m", Target: domain.TargetCart}},
		HasErrors: true,
		Intercept: domain.InterceptDecision{Behavior: domain.BehaviorBlock, Reason: domain.BlockReason},
	}
	f.checkout.EXPECT().ValidateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *domain.CheckoutRequest) domain.CheckoutResult {
			if b, _ := ctxmeta.BoundaryFromContext(ctx); b != ctxmeta.BoundaryCheckout {
				t.Errorf("boundary=%q, want checkout", b)
			}
			wantReq := &domain.CheckoutRequest{
				Lines:            []domain.CheckoutLine{{MerchandiseID: "v1", Quantity: 1}},
				ShippingAddress:  &domain.ShippingAddress{CountryCode: "US", ProvinceCode: "CA"},
				CanBlockProgress: true,
			}
			if diff := cmp.Diff(wantReq, req); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
			return want
		})

	w := f.do(http.MethodPost, "/checkout/validate",
		`{"lines":[{"merchandiseId":"v1","quantity":1}],"shippingAddress":{"countryCode":"US","provinceCode":"CA"},"canBlockProgress":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.CheckoutResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateCheckout_BadJSON_400(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(http.MethodPost, "/checkout/validate", `not-json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestGetVariant_Found(t *testing.T) {
	f := newFixture(t, 0)

	want := &domain.VariantCompliance{VariantID: "v1", ProductID: "p1", Title: "Intake", Tags: []string{"EPA:Compliant"}}
	f.catalog.EXPECT().GetVariant(gomock.Any(), "v1").Return(want, nil)

	w := f.do(http.MethodGet, "/variants/v1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.VariantCompliance
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if diff := cmp.Diff(*want, got); diff != "" {
		t.Fatalf("variant mismatch (-want +got):\n%s", diff)
	}
}

func TestGetVariant_NotFound(t *testing.T) {
	f := newFixture(t, 0)
	f.catalog.EXPECT().GetVariant(gomock.Any(), "missing").Return(nil, nil)

	if w := f.do(http.MethodGet, "/variants/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestGetVariant_InternalError(t *testing.T) {
	f := newFixture(t, 0)
	f.catalog.EXPECT().GetVariant(gomock.Any(), "boom").Return(nil, errors.New("db error"))

	if w := f.do(http.MethodGet, "/variants/boom", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestListRecentVariants_Limit(t *testing.T) {
	tests := []struct {
		name  string
		query string
		limit int
	}{
		{"default", "", 20},
		{"explicit", "?limit=5", 5},
		{"clamped", "?limit=1000", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			f.catalog.EXPECT().RecentVariants(gomock.Any(), tt.limit).
				Return([]*domain.VariantCompliance{{VariantID: "a"}}, nil)

			w := f.do(http.MethodGet, "/variants"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("want 200, got %d", w.Code)
			}
		})
	}
}

func TestListRecentVariants_Error(t *testing.T) {
	f := newFixture(t, 0)
	f.catalog.EXPECT().RecentVariants(gomock.Any(), 20).Return(nil, errors.New("db down"))

	if w := f.do(http.MethodGet, "/variants", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestNoRoute_404(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(http.MethodGet, "/no-such-route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(http.MethodGet, "/validations/run", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestPing_200(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	f := newFixture(t, 0)
	w := f.do(http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться, достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}

func TestRequestID_Echoed(t *testing.T) {
	f := newFixture(t, 0)
	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	req.Header.Set("X-Request-ID", "rid-7")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "rid-7" {
		t.Fatalf("X-Request-ID=%q, want rid-7", got)
	}
}
