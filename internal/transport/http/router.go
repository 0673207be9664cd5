package rest

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/carb_validation/internal/ports"
	"github.com/Gunvolt24/carb_validation/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler: HTTP-обработчики проверки корзины и чтения каталога.
type Handler struct {
	function   ports.FunctionRunner
	checkout   ports.CheckoutChecker
	catalog    ports.ProductReadService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler: конструктор; reqTimeout <= 0: без таймаута на обработчик.
func NewHandler(
	function ports.FunctionRunner,
	checkout ports.CheckoutChecker,
	catalog ports.ProductReadService,
	log ports.Logger,
	reqTimeout time.Duration,
) *Handler {
	return &Handler{
		function:   function,
		checkout:   checkout,
		catalog:    catalog,
		log:        log,
		reqTimeout: reqTimeout,
	}
}

// NewRouter: gin.Engine со всеми middleware и маршрутами.
// otelServiceName == "": без otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/validations/run", h.runFunction)
	r.POST("/checkout/validate", h.validateCheckout)

	r.GET("/variants", h.listRecentVariants)
	r.GET("/variants/:id", h.getVariant)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
