package ports

import "github.com/aretw0/numeral/pkg/domain"

// Interpreter is a numeral-system-specific strategy for parsing, validating
// and formatting expressions. The set of implementations is closed: Arabic and Roman.
type Interpreter interface {
	// System names the numeral system handled by this interpreter.
	System() domain.System

	// Parse matches the whole input. ok is false when the input does not have
	// the interpreter's shape; that is a "try next" signal, not an error.
	Parse(input string) (expr domain.Expression, ok bool)

	// IsValid reports whether the expression is meaningful in this system.
	IsValid(expr domain.Expression) bool

	// Format renders a value in this system.
	Format(value int64) (string, error)
}
