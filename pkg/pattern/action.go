package pattern

// Nothing stands in for a result in chains that only run side effects.
type Nothing struct{}

// Unit is the only value of Nothing.
var Unit Nothing

func (Nothing) String() string {
	return "Nothing"
}

// ActionMatcher is the side-effect form of Matcher: clauses run actions and
// the chain yields no result.
type ActionMatcher[T any] struct {
	inner Matcher[T, Nothing]
}

// MatchDo starts a side-effect chain for value.
func MatchDo[T any](value T) ActionMatcher[T] {
	return ActionMatcher[T]{inner: Match[Nothing](value)}
}

func (a ActionMatcher[T]) When(condition func(T) bool, action func()) ActionMatcher[T] {
	return ActionMatcher[T]{inner: a.inner.When(condition, run(action))}
}

func (a ActionMatcher[T]) Equals(literal any, action func()) ActionMatcher[T] {
	return ActionMatcher[T]{inner: a.inner.Equals(literal, run(action))}
}

func (a ActionMatcher[T]) Case(c Clause[Nothing]) ActionMatcher[T] {
	return ActionMatcher[T]{inner: a.inner.Case(c)}
}

func (a ActionMatcher[T]) Value() T {
	return a.inner.Value()
}

func (a ActionMatcher[T]) Matched() bool {
	return a.inner.Matched()
}

func (a ActionMatcher[T]) Otherwise() Otherwise[T, Nothing] {
	return a.inner.Otherwise()
}

// Default runs action if no clause matched.
func (a ActionMatcher[T]) Default(action func()) {
	a.inner.Default(run(action))
}

// ElseThrow returns a *NoMatchError if no clause matched.
func (a ActionMatcher[T]) ElseThrow(message ...string) error {
	_, err := a.inner.ElseThrow(message...)
	return err
}

func (a ActionMatcher[T]) Outcome() Outcome[Nothing] {
	return a.inner.Outcome()
}

// Do is Type for side-effect chains.
func Do[C any](action func(C)) Clause[Nothing] {
	return Type(func(c C) Nothing {
		action(c)
		return Unit
	})
}

// DoIf is TypeIf for side-effect chains.
func DoIf[C any](condition func(C) bool, action func(C)) Clause[Nothing] {
	return TypeIf(condition, func(c C) Nothing {
		action(c)
		return Unit
	})
}

// DoValue is Value for side-effect chains.
func DoValue[C any](literal C, action func()) Clause[Nothing] {
	return Value(literal, run(action))
}

func run(action func()) func() Nothing {
	return func() Nothing {
		action()
		return Unit
	}
}
