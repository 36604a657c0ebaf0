/*
Package numeral evaluates two-operand arithmetic expressions written either in
Arabic digits or in Roman numerals, and answers in the same numeral system.

	numeral.Calc("1 + 2")    // "3"
	numeral.Calc("VI / III") // "II"
	numeral.Calc("2 - 5")    // "-3"
	numeral.Calc("I - II")   // ErrInvalidExpression: Roman has no zero or negatives

# Rules

  - Exactly two operands and one of +, -, *, /. Whitespace around the operator is optional.
  - Both operands use the same system. Mixed input such as "I + 1" is rejected.
  - Roman numerals use I, V, X, L, C and M with subtractive pairs (IV, IX, XL, XC, CM).
  - Division is integer division truncating toward zero.
  - A Roman result must be positive: subtraction requires left > right, and a
    quotient of zero fails with domain.ErrNotRepresentable.

# Usage

Calc is the pure entry point. Calculator adds caching and lifecycle hooks for
long-running hosts (HTTP, MCP, REPL):

	calc := numeral.New(
		numeral.WithLogger(logger),
		numeral.WithCache(memory.NewCache(1024)),
	)
	res, err := calc.Evaluate(ctx, "XII * II")
	if errors.Is(err, domain.ErrInvalidExpression) {
		// ...
	}
	fmt.Println(res.Output, res.System) // XXIV roman
*/
package numeral
