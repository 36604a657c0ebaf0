/*
Package ports defines the interfaces that decouple the numeral core from its
interpreters, caches and transport adapters.

# Key Interfaces

  - Interpreter: a numeral-system strategy (parse, validate, format).
  - Evaluator: anything that turns an expression string into a domain.Result.
  - ResultCache: optional storage of previous results (memory or Redis).
*/
package ports
