package pattern

import "reflect"

// Equaler lets a literal define its own equality against arbitrary input.
// Equal should return false for values it cannot be compared with.
type Equaler interface {
	Equal(other any) bool
}

// equal compares literal against value with literal as the receiver. The
// value's own Equal method is never consulted.
func equal(literal, value any) bool {
	if e, ok := literal.(Equaler); ok {
		return e.Equal(value)
	}

	ln, vn := isNil(literal), isNil(value)
	if ln || vn {
		if !ln || !vn {
			return false
		}
		return literal == nil || value == nil || reflect.TypeOf(literal) == reflect.TypeOf(value)
	}

	if reflect.TypeOf(literal) != reflect.TypeOf(value) {
		return false
	}
	if reflect.ValueOf(literal).Comparable() {
		return literal == value
	}
	return reflect.DeepEqual(literal, value)
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
