// Package pattern provides fluent, expression-oriented pattern matching over
// a single input value.
//
// A chain starts with Match (value-returning) or MatchDo (side effects only),
// registers clauses in order and ends with one terminal call.
//
// Clauses:
// - When: predicate on the input value
// - Equals: equality against a literal, the literal being the receiver
// - Case: a clause built with Type, TypeIf, Value or If (Do, DoIf, DoValue
// for MatchDo chains)
//
// Terminals:
// - Result: the stored result, the zero value when nothing matched
// - Otherwise().Default / Default: fall back to a producer
// - Otherwise().Throw / ElseThrow: return a *NoMatchError when nothing matched
// - Otherwise().Must: panic with a *NoMatchError when nothing matched
// - Outcome: an id-stamped snapshot of the finished chain
//
// Clauses are evaluated when they are registered, not when the chain ends.
// The first clause whose test passes wins; once it has, later clauses are
// skipped without evaluating their tests.
//
//	s := pattern.Match[string](n).
//		When(func(x int) bool { return x > 100 }, func() string { return "> 100" }).
//		When(func(x int) bool { return x > 50 }, func() string { return "> 50" }).
//		Otherwise().Default(func() string { return "" })
package pattern
