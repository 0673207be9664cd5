package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/carb_validation/pkg/ctxmeta"
)

type accessor struct {
	name string
	put  func(context.Context, string) context.Context
	get  func(context.Context) (string, bool)
}

var accessors = []accessor{
	{"request_id", ctxmeta.WithRequestID, ctxmeta.RequestIDFromContext},
	{"boundary", ctxmeta.WithBoundary, ctxmeta.BoundaryFromContext},
}

func TestAccessors_RoundTrip(t *testing.T) {
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			parent := context.Background()
			ctx := a.put(parent, "value-1")

			if got, ok := a.get(ctx); !ok || got != "value-1" {
				t.Fatalf("get = %q,%v; want value-1,true", got, ok)
			}
			if _, ok := a.get(parent); ok {
				t.Fatalf("parent context must stay untouched")
			}
		})
	}
}

func TestAccessors_EmptyValueIsNoop(t *testing.T) {
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			parent := context.Background()
			if ctx := a.put(parent, ""); ctx != parent {
				t.Fatalf("empty value must return the same ctx")
			}
			var nilCtx context.Context
			if got := a.put(nilCtx, "x"); got != nil {
				t.Fatalf("nil ctx must stay nil")
			}
		})
	}
}

func TestAccessors_Missing(t *testing.T) {
	type foreignKey struct{}

	cases := map[string]context.Context{
		"background":   context.Background(),
		"foreign key":  context.WithValue(context.Background(), foreignKey{}, "x"),
		"empty stored": context.WithValue(context.WithValue(context.Background(), ctxmeta.KeyRequestID, ""), ctxmeta.KeyBoundary, ""),
	}
	for name, ctx := range cases {
		for _, a := range accessors {
			if got, ok := a.get(ctx); ok || got != "" {
				t.Errorf("%s/%s: got %q,%v; want absent", name, a.name, got, ok)
			}
		}
	}
}

func TestAccessors_Independent(t *testing.T) {
	ctx := ctxmeta.WithBoundary(context.Background(), ctxmeta.BoundaryIngest)
	ctx = ctxmeta.WithRequestID(ctx, "product-compliance/0/12")

	b, _ := ctxmeta.BoundaryFromContext(ctx)
	id, _ := ctxmeta.RequestIDFromContext(ctx)
	if b != ctxmeta.BoundaryIngest || id != "product-compliance/0/12" {
		t.Fatalf("boundary=%q request_id=%q", b, id)
	}
}
