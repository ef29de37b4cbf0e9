package pattern

// Clause is a test fused with its producer. It reports false, without calling
// the producer, when the test does not hold for value.
type Clause[R any] func(value any) (R, bool)

// Type matches when the input can be narrowed to C, which may be an interface
// or a concrete type, and hands the narrowed view to produce.
func Type[C, R any](produce func(C) R) Clause[R] {
	return func(value any) (R, bool) {
		c, ok := value.(C)
		if !ok {
			var zero R
			return zero, false
		}
		return produce(c), true
	}
}

// TypeIf matches when the input can be narrowed to C and condition holds for
// the narrowed view.
func TypeIf[C, R any](condition func(C) bool, produce func(C) R) Clause[R] {
	return func(value any) (R, bool) {
		c, ok := value.(C)
		if !ok || !condition(c) {
			var zero R
			return zero, false
		}
		return produce(c), true
	}
}

// Value matches when literal equals the input, literal being the receiver.
func Value[C, R any](literal C, produce func() R) Clause[R] {
	return func(value any) (R, bool) {
		if !equal(literal, value) {
			var zero R
			return zero, false
		}
		return produce(), true
	}
}

// If is the clause form of Matcher.When. A nil interface input never
// narrows to T, so it never matches.
func If[T, R any](condition func(T) bool, produce func() R) Clause[R] {
	return func(value any) (R, bool) {
		t, ok := value.(T)
		if !ok || !condition(t) {
			var zero R
			return zero, false
		}
		return produce(), true
	}
}
