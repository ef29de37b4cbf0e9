package pattern

// ResultProvider is implemented by everything that can report how a chain
// ended: Matcher, Outcome.
type ResultProvider[R any] interface {
	// Result returns the stored result, the zero value if nothing matched
	Result() R
	// Matched returns true if some clause matched
	Matched() bool
}

var (
	_ ResultProvider[int] = Matcher[string, int]{}
	_ ResultProvider[int] = Outcome[int]{}
)

// ResultOr returns p's result if it matched, def otherwise.
func ResultOr[R any](p ResultProvider[R], def R) R {
	if p.Matched() {
		return p.Result()
	}
	return def
}
