package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/carb_validation/internal/ports"
)

// quietRoutes — служебные маршруты без access-лога.
var quietRoutes = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — access-лог. 4xx пишутся как предупреждения, 5xx как ошибки.
// request_id и trace_id добавляет сам логгер из контекста запроса.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, quiet := quietRoutes[route]; quiet {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		status := c.Writer.Status()
		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(c.Request.Context(), "http %s %s status=%d bytes=%d took=%s ip=%s",
			c.Request.Method, route, status, c.Writer.Size(), time.Since(start), c.ClientIP())
	}
}
