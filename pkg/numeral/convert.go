package numeral

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/numeral/pkg/domain"
)

var (
	romanNumeral  = regexp.MustCompile(`^[IVXCML]+$`)
	arabicNumeral = regexp.MustCompile(`^\d+$`)
)

// Convert rewrites a single numeral in the other system: Roman to Arabic or
// Arabic to Roman. It returns the system of the output.
func Convert(s string) (string, domain.System, error) {
	s = strings.TrimSpace(s)
	switch {
	case romanNumeral.MatchString(s):
		return strconv.FormatInt(Decode(s), 10), domain.SystemArabic, nil
	case arabicNumeral.MatchString(s):
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidExpression, s)
		}
		out, err := NewRoman().Format(n)
		if err != nil {
			return "", "", err
		}
		return out, domain.SystemRoman, nil
	}
	return "", "", fmt.Errorf("%w: %q is not a numeral", domain.ErrInvalidExpression, s)
}
