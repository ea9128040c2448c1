package hours

import "testing"

func TestIntervalIsEmpty(t *testing.T) {
	cases := []struct {
		interval Interval
		empty    bool
	}{
		{Interval{}, true},
		{Interval{Start: 5, End: 5}, true},
		{Interval{Start: 10, End: 5}, true},
		{Interval{Start: 0, End: 1}, false},
		{Interval{Start: -100, End: -50}, false},
	}
	for _, c := range cases {
		if got := c.interval.IsEmpty(); got != c.empty {
			t.Errorf("IsEmpty(%+v) = %v, want %v", c.interval, got, c.empty)
		}
	}
}

func TestIntervalShiftedRoundTrip(t *testing.T) {
	original := Interval{Start: 100, End: 200}
	if got := original.Shifted(Week).Shifted(-Week); got != original {
		t.Errorf("Shifted(+Week).Shifted(-Week) = %+v, want %+v", got, original)
	}
	if got := original.Shifted(3600); got != (Interval{Start: 3700, End: 3800}) {
		t.Errorf("Shifted(3600) = %+v", got)
	}
}

func TestIntervalUnited(t *testing.T) {
	a := Interval{Start: 0, End: 100}
	b := Interval{Start: 50, End: 150}
	empty := Interval{}

	if got := empty.United(a); got != a {
		t.Errorf("empty.United(a) = %+v, want %+v", got, a)
	}
	if got := a.United(empty); got != a {
		t.Errorf("a.United(empty) = %+v, want %+v", got, a)
	}
	want := Interval{Start: 0, End: 150}
	if got := a.United(b); got != want {
		t.Errorf("a.United(b) = %+v, want %+v", got, want)
	}
	if a.United(b) != b.United(a) {
		t.Error("United is not commutative")
	}

	// Bounding union, not gap-aware.
	disjoint := Interval{Start: 200, End: 300}
	if got := a.United(disjoint); got != (Interval{Start: 0, End: 300}) {
		t.Errorf("bounding union = %+v", got)
	}
}

func TestIntervalIntersected(t *testing.T) {
	cases := []struct {
		a, b, want Interval
	}{
		{Interval{0, 100}, Interval{50, 150}, Interval{50, 100}},
		{Interval{50, 150}, Interval{0, 100}, Interval{50, 100}},
		{Interval{0, 100}, Interval{0, 100}, Interval{0, 100}},
		// Disjoint and touching both collapse to the canonical empty.
		{Interval{0, 100}, Interval{200, 300}, Interval{}},
		{Interval{0, 50}, Interval{50, 100}, Interval{}},
		{Interval{}, Interval{0, 100}, Interval{}},
	}
	for _, c := range cases {
		if got := c.a.Intersected(c.b); got != c.want {
			t.Errorf("%+v.Intersected(%+v) = %+v, want %+v", c.a, c.b, got, c.want)
		}
	}
}
