package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a single expression in bytes. Roman operands
	// multiply into long runs of M, so the default stays small.
	DefaultMaxInputSize = 256
	// EnvMaxInputSize overrides DefaultMaxInputSize when set to a positive integer.
	EnvMaxInputSize = "NUMERAL_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput prepares one line of user input for evaluation.
// Oversized or non-UTF-8 input is rejected; control characters other than
// whitespace are dropped and the result is trimmed. Tabs and newlines survive
// because the grammars accept any whitespace around the operator.
func SanitizeInput(input string) (string, error) {
	if limit := maxInputSize(); len(input) > limit {
		// Reject rather than truncate: "MMM * MMM" cut short is still an expression.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	if strings.IndexFunc(input, isUnsafeControl) >= 0 {
		input = strings.Map(func(r rune) rune {
			if isUnsafeControl(r) {
				return -1
			}
			return r
		}, input)
	}
	return strings.TrimSpace(input), nil
}

func isUnsafeControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
