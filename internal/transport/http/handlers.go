package rest

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/pkg/ctxmeta"
	"github.com/Gunvolt24/carb_validation/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultVariantsLimit = 20
	maxVariantsLimit     = 100
)

// runFunction: POST /validations/run: вход серверной функции в формате хоста.
// Лишние поля хоста игнорируются. Битый JSON → 400; иначе всегда 200 с результатом функции.
func (h *Handler) runFunction(c *gin.Context) {
	var in domain.FunctionInputDTO
	if err := httpx.DecodeJSON(c, &in); err != nil {
		h.log.Warnf(c.Request.Context(), "invalid function input: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid function input"})
		return
	}

	ctx, cancel := h.requestContext(c, ctxmeta.BoundaryFunction)
	defer cancel()

	c.JSON(http.StatusOK, h.function.RunFunction(ctx, in.ToDomain()))
}

// validateCheckout: POST /checkout/validate: клиентская проверка с решением о блокировке.
// Недоступность каталога не даёт 5xx: она уже превращена в ошибку валидации.
func (h *Handler) validateCheckout(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := httpx.DecodeStrictJSON(c, &req); err != nil {
		h.log.Warnf(c.Request.Context(), "invalid checkout request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout request"})
		return
	}

	ctx, cancel := h.requestContext(c, ctxmeta.BoundaryCheckout)
	defer cancel()

	c.JSON(http.StatusOK, h.checkout.ValidateCheckout(ctx, &req))
}

func (h *Handler) getVariant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c, "")
	defer cancel()

	v, err := h.catalog.GetVariant(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "GetVariant failed variant_id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "variant not found"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) listRecentVariants(c *gin.Context) {
	limit := httpx.ParseLimit(c, defaultVariantsLimit, maxVariantsLimit)

	ctx, cancel := h.requestContext(c, "")
	defer cancel()

	list, err := h.catalog.RecentVariants(ctx, limit)
	if err != nil {
		h.log.Errorf(ctx, "RecentVariants failed limit=%d err=%v", limit, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// requestContext: контекст запроса с таймаутом обработчика и меткой точки вызова.
func (h *Handler) requestContext(c *gin.Context, boundary string) (context.Context, context.CancelFunc) {
	ctx := ctxmeta.WithBoundary(c.Request.Context(), boundary)
	if h.reqTimeout > 0 {
		return context.WithTimeout(ctx, h.reqTimeout)
	}
	return context.WithCancel(ctx)
}
