package pattern

// Otherwise resolves a chain, falling back when no clause matched. It never
// changes the matcher it was taken from.
type Otherwise[T, R any] struct {
	m Matcher[T, R]
}

// Default returns the stored result, or produce() if nothing matched.
// produce is not called when a clause matched.
func (o Otherwise[T, R]) Default(produce func() R) R {
	if o.m.matched {
		return o.m.result
	}
	return produce()
}

// Throw returns the stored result, or a *NoMatchError if nothing matched. The
// error carries the first non-empty message, or one naming the input value.
func (o Otherwise[T, R]) Throw(message ...string) (R, error) {
	if o.m.matched {
		return o.m.result, nil
	}
	var zero R
	return zero, newNoMatchError(o.m.value, message...)
}

// Must is Throw for expression position: it panics with the *NoMatchError.
func (o Otherwise[T, R]) Must(message ...string) R {
	r, err := o.Throw(message...)
	if err != nil {
		panic(err)
	}
	return r
}
