package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/foodcart/internal/ports"
)

// StreamResult — статистика валидации потока JSONL.
type StreamResult struct {
	Valid   int
	Invalid int
}

// OrdersFromJSONL — читает JSONL из reader'а, валидирует каждую строку,
// валидные печатает каноническим JSON по строке в writer.
// Невалидная строка не прерывает поток, только увеличивает счётчик.
func OrdersFromJSONL(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (StreamResult, error) {
	var res StreamResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if strings.TrimSpace(string(line)) == "" {
			continue
		}

		order, err := OrderFromJSON(ctx, validator, line)
		if err != nil {
			res.Invalid++
			continue
		}

		canonical, _ := json.Marshal(order)
		if _, err := ow.Write(canonical); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return res, fmt.Errorf("write newline: %w", err)
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
