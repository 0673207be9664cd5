// Пакет ctxmeta: метаданные запроса, прокидываемые через context.Context:
// request_id, точка вызова (function/checkout/cli/ingest) и trace/span активного спана.
// HTTP-слой и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyBoundary  ctxKey = "boundary"
)

// Точки вызова проверки CARB.
const (
	BoundaryFunction = "function"
	BoundaryCheckout = "checkout"
	BoundaryCLI      = "cli"
	BoundaryIngest   = "ingest" // обновления каталога из Kafka
)

// WithRequestID кладёт request_id в контекст (пустое значение игнорируется).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithBoundary помечает контекст точкой вызова проверки.
func WithBoundary(ctx context.Context, boundary string) context.Context {
	return withString(ctx, KeyBoundary, boundary)
}

// BoundaryFromContext: точка вызова проверки, если она задана.
func BoundaryFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyBoundary)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
