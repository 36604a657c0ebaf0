/*
Package domain contains the core value types of the numeral calculator.

It defines the parsed Expression, the Operator set, the evaluation Result and
the sentinel errors shared by every interpreter and adapter. This package is
kept pure and free of I/O so it can be used by the core and by any adapter.

# Key Entities

  - Expression: two int64 operands joined by one Operator.
  - Operator: one of +, -, * and /.
  - System: the numeral system an expression was written in (Arabic or Roman).
  - Result: the formatted output of one evaluation, tagged with its System.
*/
package domain
