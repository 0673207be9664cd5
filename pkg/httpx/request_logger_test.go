package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/carb_validation/pkg/httpx"
)

// captureLogger — запоминает строки по уровням.
type captureLogger struct {
	mu    sync.Mutex
	lines map[string][]string
}

func (l *captureLogger) add(level, f string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lines == nil {
		l.lines = map[string][]string{}
	}
	l.lines[level] = append(l.lines[level], fmt.Sprintf(f, a...))
}

func (l *captureLogger) Infof(_ context.Context, f string, a ...any)  { l.add("info", f, a...) }
func (l *captureLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("warn", f, a...) }
func (l *captureLogger) Errorf(_ context.Context, f string, a ...any) { l.add("error", f, a...) }

func TestRequestLogger_Levels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := &captureLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/variants/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/checkout/validate", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.POST("/validations/run", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/ping", http.NoBody),
		httptest.NewRequest(http.MethodGet, "/variants/gid-1", http.NoBody),
		httptest.NewRequest(http.MethodPost, "/checkout/validate", http.NoBody),
		httptest.NewRequest(http.MethodPost, "/validations/run", http.NoBody),
		httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	info, warn, errs := log.lines["info"], log.lines["warn"], log.lines["error"]
	if len(info) != 1 || len(warn) != 2 || len(errs) != 1 {
		t.Fatalf("unexpected log levels: info=%v warn=%v error=%v", info, warn, errs)
	}
	// маршрут логируется шаблоном, а не конкретным id
	if !strings.Contains(info[0], "GET /variants/:id status=200") {
		t.Fatalf("route template missing: %q", info[0])
	}
	if !strings.Contains(warn[1], "GET /nowhere status=404") {
		t.Fatalf("unknown path must be logged as is: %q", warn[1])
	}
}
