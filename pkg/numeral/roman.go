package numeral

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/numeral/pkg/domain"
)

// MaxRoman is the largest value rendered as a Roman numeral. Above 3999 the
// encoding is a run of M symbols, so the cap bounds the output at a thousand of them.
const MaxRoman = 1_000_000

// A single trailing line terminator is tolerated, as for lines read from a file.
var romanExpr = regexp.MustCompile(`^([IVXCML]+)\s*([-/*+])\s*([IVXCML]+)(?:\r?\n)?$`)

// Roman interprets expressions written with Roman numerals.
type Roman struct{}

// NewRoman returns the Roman interpreter.
func NewRoman() Roman {
	return Roman{}
}

func (Roman) System() domain.System {
	return domain.SystemRoman
}

// Parse matches "numeral op numeral" and decodes both operands.
func (Roman) Parse(input string) (domain.Expression, bool) {
	m := romanExpr.FindStringSubmatch(input)
	if m == nil {
		return domain.Expression{}, false
	}
	return domain.NewExpression(Decode(m[1]), domain.Operator(m[2]), Decode(m[3])), true
}

// IsValid rejects subtractions whose result would not be positive.
func (Roman) IsValid(expr domain.Expression) bool {
	if expr.Op != domain.OpSub {
		return true
	}
	return expr.Left > expr.Right
}

// Format encodes value, failing with domain.ErrNotRepresentable when it is
// not positive or exceeds MaxRoman.
func (Roman) Format(value int64) (string, error) {
	if value <= 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrNotRepresentable, value)
	}
	if value > MaxRoman {
		return "", fmt.Errorf("%w: %d exceeds %d", domain.ErrNotRepresentable, value, MaxRoman)
	}
	return Encode(value), nil
}

// Decode converts a Roman numeral to an integer, scanning right to left.
// A symbol followed by a larger one it may precede (I before V/X, X before L/C,
// C before M) is subtracted. Characters outside the symbol set are ignored.
func Decode(s string) int64 {
	var (
		result int64
		prev   byte
	)
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		switch c {
		case 'I':
			if prev == 'X' || prev == 'V' {
				result--
			} else {
				result++
			}
		case 'V':
			result += 5
		case 'X':
			if prev == 'C' || prev == 'L' {
				result -= 10
			} else {
				result += 10
			}
		case 'L':
			result += 50
		case 'C':
			if prev == 'M' {
				result -= 100
			} else {
				result += 100
			}
		case 'M':
			result += 1000
		}
		prev = c
	}
	return result
}

// Encode converts a positive integer to a Roman numeral using greedy subtractive notation.
// Values above 3999 repeat M. Non-positive values and values above MaxRoman
// yield an empty string.
func Encode(value int64) string {
	if value <= 0 || value > MaxRoman {
		return ""
	}
	var b strings.Builder
	rem := value

	if rem/1000 > 0 {
		b.WriteString(strings.Repeat("M", int(rem/1000)))
		rem %= 1000
	}
	if rem >= 900 {
		b.WriteString("CM")
		rem -= 900
	}
	if rem/100 > 0 {
		b.WriteString(strings.Repeat("C", int(rem/100)))
		rem %= 100
	}
	if rem >= 90 {
		b.WriteString("XC")
		rem -= 90
	}
	// At most one L: after the XC step rem < 90.
	if rem/50 > 0 {
		b.WriteByte('L')
		rem %= 50
	}
	if rem >= 40 {
		b.WriteString("XL")
		rem -= 40
	}
	if rem/10 > 0 {
		b.WriteString(strings.Repeat("X", int(rem/10)))
		rem %= 10
	}
	if rem >= 9 {
		b.WriteString("IX")
		rem -= 9
	}
	// At most one V: after the IX step rem < 9.
	if rem/5 > 0 {
		b.WriteByte('V')
		rem %= 5
	}
	if rem >= 4 {
		b.WriteString("IV")
		rem -= 4
	}
	if rem > 0 {
		b.WriteString(strings.Repeat("I", int(rem)))
	}
	return b.String()
}
