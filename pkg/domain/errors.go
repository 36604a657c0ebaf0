package domain

import "errors"

// ErrInvalidExpression is returned when no interpreter can both parse and validate the input.
var ErrInvalidExpression = errors.New("invalid expression")

// ErrDivisionByZero is returned when the right operand of a division is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownOperator is returned when an expression carries an operator outside {+, -, *, /}.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrNotRepresentable is returned when a value cannot be written in the target numeral system,
// e.g. zero or a negative number in Roman numerals.
var ErrNotRepresentable = errors.New("value not representable in numeral system")

// ErrCacheMiss is returned by result caches when no entry exists for an input.
var ErrCacheMiss = errors.New("cache miss")
