package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/carb_validation/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// Summary: строка итогов для stderr.
func (r JSONLResult) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid / %d flagged", r.ValidLinesCount, r.InvalidLinesCount, r.FlaggedCount)
}

// ValidateFile: обрабатывает файл как JSON (один вход) или JSONL и пишет результаты в writer.
func ValidateFile(ctx context.Context, runner ports.FunctionRunner, filePath string, format InputFormat, ow io.Writer) (JSONLResult, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return JSONLResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return validateReader(ctx, runner, file, format, ow)
}

// ValidateReader: то же для произвольного reader’а (stdin); FormatAuto трактуется как JSONL.
func ValidateReader(ctx context.Context, runner ports.FunctionRunner, ir io.Reader, format InputFormat, ow io.Writer) (JSONLResult, error) {
	if format == FormatAuto {
		format = FormatJSONL
	}
	return validateReader(ctx, runner, ir, format, ow)
}

func validateReader(ctx context.Context, runner ports.FunctionRunner, ir io.Reader, format InputFormat, ow io.Writer) (JSONLResult, error) {
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(ir)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("read input: %w", err)
		}
		result, err := RunFromJSON(ctx, runner, raw)
		if err != nil {
			return JSONLResult{InvalidLinesCount: 1}, err
		}
		if err := writeResult(ow, result); err != nil {
			return JSONLResult{}, err
		}
		res := JSONLResult{ValidLinesCount: 1}
		if hasValidationErrors(result) {
			res.FlaggedCount = 1
		}
		return res, nil

	case FormatJSONL:
		return ValidateJSONLStream(ctx, runner, ir, ow)

	default:
		return JSONLResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}
