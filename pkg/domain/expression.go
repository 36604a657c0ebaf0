package domain

import "fmt"

// Operator is a binary arithmetic operator symbol.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Valid reports whether the operator belongs to the supported set.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Expression is a parsed two-operand arithmetic expression.
// It is a value type; interpreters build it only after a successful match.
type Expression struct {
	Left  int64
	Op    Operator
	Right int64
}

// NewExpression builds an expression from its parts.
func NewExpression(left int64, op Operator, right int64) Expression {
	return Expression{Left: left, Op: op, Right: right}
}

// Apply evaluates the operator on both operands.
// Division truncates toward zero.
func (e Expression) Apply() (int64, error) {
	switch e.Op {
	case OpAdd:
		return e.Left + e.Right, nil
	case OpSub:
		return e.Left - e.Right, nil
	case OpMul:
		return e.Left * e.Right, nil
	case OpDiv:
		if e.Right == 0 {
			return 0, ErrDivisionByZero
		}
		return e.Left / e.Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, string(e.Op))
}

func (e Expression) String() string {
	return fmt.Sprintf("%d %s %d", e.Left, e.Op, e.Right)
}
