package pattern

// Matcher accumulates clauses against one input value and keeps the result
// of the first clause that matched. It is a value: every registration returns
// an updated copy and never touches the receiver.
type Matcher[T, R any] struct {
	value   T
	result  R
	matched bool
}

// Match starts a value-returning chain for value. The result type comes first
// so the input type can be inferred, e.g. Match[string](150).
func Match[R, T any](value T) Matcher[T, R] {
	return Matcher[T, R]{value: value}
}

// When matches if condition holds for the input value.
func (m Matcher[T, R]) When(condition func(T) bool, produce func() R) Matcher[T, R] {
	if m.matched || !condition(m.value) {
		return m
	}
	return m.resolve(produce())
}

// Equals matches if literal equals the input value. The literal is the
// receiver of the comparison, see Equaler.
func (m Matcher[T, R]) Equals(literal any, produce func() R) Matcher[T, R] {
	if m.matched || !equal(literal, m.value) {
		return m
	}
	return m.resolve(produce())
}

// Case registers a prepared clause.
func (m Matcher[T, R]) Case(c Clause[R]) Matcher[T, R] {
	if m.matched || c == nil {
		return m
	}
	if r, ok := c(m.value); ok {
		return m.resolve(r)
	}
	return m
}

func (m Matcher[T, R]) resolve(r R) Matcher[T, R] {
	m.result = r
	m.matched = true
	return m
}

// Value returns the input value.
func (m Matcher[T, R]) Value() T {
	return m.value
}

// Result returns the stored result, or the zero value of R if no clause
// matched.
func (m Matcher[T, R]) Result() R {
	return m.result
}

func (m Matcher[T, R]) Matched() bool {
	return m.matched
}

// Otherwise closes the chain with a fallback.
func (m Matcher[T, R]) Otherwise() Otherwise[T, R] {
	return Otherwise[T, R]{m: m}
}

// Default is a shortcut for m.Otherwise().Default(produce).
func (m Matcher[T, R]) Default(produce func() R) R {
	return m.Otherwise().Default(produce)
}

// ElseThrow is a shortcut for m.Otherwise().Throw(message...).
func (m Matcher[T, R]) ElseThrow(message ...string) (R, error) {
	return m.Otherwise().Throw(message...)
}

// Outcome snapshots the chain.
func (m Matcher[T, R]) Outcome() Outcome[R] {
	if m.matched {
		return matchedOutcome(m.result)
	}
	return unmatchedOutcome[R](newNoMatchError(m.value))
}
