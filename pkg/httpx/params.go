package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseLimit: ?limit=N в границах [1, maxLimit]; отсутствие или мусор дают def.
func ParseLimit(c *gin.Context, def, maxLimit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	if err != nil {
		n = def
	}
	return max(1, min(n, maxLimit))
}
