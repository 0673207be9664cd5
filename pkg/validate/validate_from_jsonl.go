package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/carb_validation/internal/domain"
	"github.com/Gunvolt24/carb_validation/internal/ports"
)

// JSONLResult: статистика обработки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int // разобранные входы
	InvalidLinesCount int // неразборчивые строки
	FlaggedCount      int // входы, по которым функция вернула ошибки валидации
}

// ValidateJSONLStream: читает JSONL из reader’а, прогоняет каждую строку через функцию
// и пишет результат одной строкой JSON. Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, runner ports.FunctionRunner, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие корзины
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		result, err := RunFromJSON(ctx, runner, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			// не возвращаем ошибку, просто пропускаем невалидную строку
			continue
		}

		if err := writeResult(ow, result); err != nil {
			return res, err
		}
		res.ValidLinesCount++
		if hasValidationErrors(result) {
			res.FlaggedCount++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeResult(ow io.Writer, result *domain.FunctionResult) error {
	marshal, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if _, err := ow.Write(marshal); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if _, err := ow.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func hasValidationErrors(result *domain.FunctionResult) bool {
	for _, op := range result.Operations {
		if op.ValidationAdd != nil && len(op.ValidationAdd.Errors) > 0 {
			return true
		}
	}
	return false
}
