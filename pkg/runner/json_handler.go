package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/numeral/pkg/domain"
)

// JSONLine is the wire shape of one JSONHandler output line.
type JSONLine struct {
	Input   string        `json:"input,omitempty"`
	Output  string        `json:"output,omitempty"`
	System  domain.System `json:"system,omitempty"`
	Value   *int64        `json:"value,omitempty"`
	Error   string        `json:"error,omitempty"`
	Message string        `json:"message,omitempty"`
}

// JSONRequest is the object form of one input line.
type JSONRequest struct {
	Expression string `json:"expression"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Input lines may be raw expressions, JSON strings ("\"1 + 2\"") or JSONRequest objects.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	lines linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	lines := h.lines.lines(h.Reader)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		// Try to unquote if it's a JSON string
		var val string
		if err := json.Unmarshal([]byte(res.text), &val); err == nil {
			return val, nil
		}
		var req JSONRequest
		if err := json.Unmarshal([]byte(res.text), &req); err == nil && req.Expression != "" {
			return req.Expression, nil
		}
		// Fallback: raw text
		return res.text, nil
	}
}

func (h *JSONHandler) Result(ctx context.Context, res domain.Result) error {
	value := res.Value
	return h.Encoder.Encode(JSONLine{
		Input:  res.Input,
		Output: res.Output,
		System: res.System,
		Value:  &value,
	})
}

func (h *JSONHandler) Failure(ctx context.Context, input string, err error) error {
	return h.Encoder.Encode(JSONLine{Input: input, Error: err.Error()})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(JSONLine{Message: msg})
}

// Close stops the background reader. Later Input calls return io.EOF.
func (h *JSONHandler) Close() error {
	return h.lines.Close()
}
