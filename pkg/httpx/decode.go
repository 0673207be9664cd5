package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes: предел размера тела запроса на проверку корзины.
const MaxBodyBytes = 1 << 20

// ErrTrailingData: после JSON-объекта в теле есть ещё данные.
var ErrTrailingData = errors.New("trailing data after json body")

// DecodeStrictJSON: разбор тела собственного контракта сервиса: неизвестные поля и хвост запрещены.
func DecodeStrictJSON(c *gin.Context, dst any) error { return decodeBody(c, dst, true) }

// DecodeJSON: разбор тела, схема которого принадлежит хосту. Лишние поля игнорируются,
// хвост после объекта запрещён.
func DecodeJSON(c *gin.Context, dst any) error { return decodeBody(c, dst, false) }

func decodeBody(c *gin.Context, dst any, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}
