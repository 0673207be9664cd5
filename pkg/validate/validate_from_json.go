package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
)

// ErrInvalidInput: вход функции не удалось разобрать.
var ErrInvalidInput = errors.New("invalid function input")

// DecodeFunctionInput: разбор входа функции. Схему задаёт хост, поэтому лишние поля
// игнорируются; данные после объекта запрещены.
func DecodeFunctionInput(raw []byte) (*domain.FunctionInputDTO, error) {
	var in domain.FunctionInputDTO
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidInput, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidInput)
	}
	return &in, nil
}

// RunFromJSON: разбор входа и вызов функции проверки.
func RunFromJSON(ctx context.Context, runner ports.FunctionRunner, raw []byte) (*domain.FunctionResult, error) {
	in, err := DecodeFunctionInput(raw)
	if err != nil {
		return nil, err
	}
	res := runner.RunFunction(ctx, in.ToDomain())
	return &res, nil
}
