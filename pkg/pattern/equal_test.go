package pattern

import "testing"

// oneWay claims equality with everything.
type oneWay struct{}

func (oneWay) Equal(any) bool { return true }

// never refuses equality with everything.
type never struct{}

func (never) Equal(any) bool { return false }

type point struct{ X, Y int }

type tags struct{ names []string }

func TestEqual(t *testing.T) {
	t.Parallel()
	var nilFoo *foo
	var nilBoo *boo
	cases := []struct {
		name    string
		literal any
		value   any
		want    bool
	}{
		{"same int", 5, 5, true},
		{"different int", 5, 6, false},
		{"int vs string", 5, "5", false},
		{"int vs int64", 5, int64(5), false},
		{"struct", point{1, 2}, point{1, 2}, true},
		{"struct differs", point{1, 2}, point{2, 1}, false},
		{"slices structural", []int{1, 2}, []int{1, 2}, true},
		{"slices differ", []int{1, 2}, []int{2, 1}, false},
		{"non-comparable struct", tags{[]string{"a"}}, tags{[]string{"a"}}, true},
		{"untyped nils", nil, nil, true},
		{"nil literal vs typed nil", nil, nilFoo, true},
		{"typed nils same type", nilFoo, (*foo)(nil), true},
		{"typed nils other type", nilFoo, nilBoo, false},
		{"nil vs value", nil, 0, false},
		{"equaler literal", oneWay{}, 17, true},
		{"equaler literal refuses", never{}, never{}, false},
		{"equaler value not consulted", 17, oneWay{}, false},
	}

	for _, c := range cases {
		if got := equal(c.literal, c.value); got != c.want {
			t.Fatalf("%s: equal(%v, %v) expected %v, got %v", c.name, c.literal, c.value, c.want, got)
		}
	}
}

func TestEquals_LiteralIsReceiver(t *testing.T) {
	t.Parallel()
	got := Match[string, any](17).
		Equals(never{}, func() string { return "never" }).
		Equals(oneWay{}, func() string { return "oneWay" }).
		Result()

	if got != "oneWay" {
		t.Fatalf("expected oneWay, got %q", got)
	}

	if Match[string, any](oneWay{}).Equals(17, func() string { return "17" }).Matched() {
		t.Fatalf("the value's Equal must not be used")
	}
}
