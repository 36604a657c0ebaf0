package numeral

import (
	"regexp"
	"strconv"

	"github.com/aretw0/numeral/pkg/domain"
)

// A single trailing line terminator is tolerated, as for lines read from a file.
var arabicExpr = regexp.MustCompile(`^(\d+)\s*([-/*+])\s*(\d+)(?:\r?\n)?$`)

// Arabic interprets expressions written with decimal digits.
type Arabic struct{}

// NewArabic returns the Arabic interpreter.
func NewArabic() Arabic {
	return Arabic{}
}

func (Arabic) System() domain.System {
	return domain.SystemArabic
}

// Parse matches "digits op digits". Operands that overflow int64 do not match.
func (Arabic) Parse(input string) (domain.Expression, bool) {
	m := arabicExpr.FindStringSubmatch(input)
	if m == nil {
		return domain.Expression{}, false
	}
	left, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return domain.Expression{}, false
	}
	right, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return domain.Expression{}, false
	}
	return domain.NewExpression(left, domain.Operator(m[2]), right), true
}

// IsValid always holds: every int64 has a decimal form.
func (Arabic) IsValid(domain.Expression) bool {
	return true
}

func (Arabic) Format(value int64) (string, error) {
	return strconv.FormatInt(value, 10), nil
}
