/*
Package numeral implements the two numeral-system interpreters used by the calculator.

Arabic handles plain decimal digits. Roman handles the symbols I, V, X, L, C and M
using subtractive notation (IV, IX, XL, XC, CM). Both implement ports.Interpreter.

The Roman decoder does not check that a numeral is well formed: IIII decodes to 4
and VX decodes to 15. The encoder is greedy and emits at most one L and one V.
*/
package numeral
