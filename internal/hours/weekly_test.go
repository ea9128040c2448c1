package hours

import "testing"

func TestNormalized(t *testing.T) {
	cases := []struct {
		name  string
		input IntervalSet
		want  IntervalSet
	}{
		{
			name:  "overlapping merge",
			input: IntervalSet{{0, 100}, {50, 150}},
			want:  IntervalSet{{0, 150}},
		},
		{
			name:  "disjoint preserved",
			input: IntervalSet{{0, 100}, {200, 300}},
			want:  IntervalSet{{0, 100}, {200, 300}},
		},
		{
			name:  "touching merge",
			input: IntervalSet{{0, 100}, {100, 200}},
			want:  IntervalSet{{0, 200}},
		},
		{
			name:  "unsorted with duplicates",
			input: IntervalSet{{200, 300}, {0, 100}, {0, 100}},
			want:  IntervalSet{{0, 100}, {200, 300}},
		},
		{
			name:  "empty entries dropped",
			input: IntervalSet{{50, 50}, {10, 5}, {}},
			want:  nil,
		},
		{
			name:  "negative anchor wraps to week end",
			input: IntervalSet{{-3600, 3600}},
			want:  IntervalSet{{Week - 3600, Week + 3600}},
		},
		{
			name:  "anchor beyond one week wraps down",
			input: IntervalSet{{Week + 100, Week + 200}},
			want:  IntervalSet{{100, 200}},
		},
		{
			name:  "overshoot folded into week start",
			input: IntervalSet{{0, 7200}, {Week - 7200, Week + 3600}},
			want:  IntervalSet{{0, 7200}, {Week - 7200, Week}},
		},
		{
			name:  "overshoot touching week-start interval folds",
			input: IntervalSet{{3600, 10800}, {Week - 7200, Week + 3600}},
			want:  IntervalSet{{0, 10800}, {Week - 7200, Week}},
		},
		{
			name:  "overshoot short of week-start interval retained",
			input: IntervalSet{{32400, 61200}, {Week - 7200, Week + 3600}},
			want:  IntervalSet{{32400, 61200}, {Week - 7200, Week + 3600}},
		},
		{
			name:  "tail past representable overshoot wraps",
			input: IntervalSet{{Week - 3600, Week + 36000}},
			want:  IntervalSet{{0, 36000}, {Week - 3600, Week}},
		},
		{
			name:  "full cycle clamps to one week",
			input: IntervalSet{{0, 2 * Week}, {100, 200}},
			want:  IntervalSet{{0, Week}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.input.Normalized()
			if !got.Equal(c.want) {
				t.Fatalf("Normalized() = %+v, want %+v", got, c.want)
			}
			if again := got.Normalized(); !again.Equal(got) {
				t.Fatalf("not idempotent: %+v -> %+v", got, again)
			}
		})
	}
}

func TestIntervalSetIsEmpty(t *testing.T) {
	if !(IntervalSet{}).IsEmpty() {
		t.Error("empty set should be empty")
	}
	if !(IntervalSet{{5, 5}, {10, 3}}).IsEmpty() {
		t.Error("set of empty intervals should be empty")
	}
	if (IntervalSet{{5, 5}, {0, 1}}).IsEmpty() {
		t.Error("set with a real interval should not be empty")
	}
}

func TestWorkingHoursIsSet(t *testing.T) {
	if (WorkingHours{}).IsSet() {
		t.Error("hours without timezone id should not count as set")
	}
	// The timezone id alone is the truthiness signal.
	if !(WorkingHours{TimezoneID: "UTC"}).IsSet() {
		t.Error("hours with timezone id and no intervals should count as set")
	}
	if (WorkingHours{Intervals: IntervalSet{{0, 100}}}).IsSet() {
		t.Error("intervals without timezone id should not count as set")
	}
}

func TestWorkingHoursNormalizedAndEqual(t *testing.T) {
	hours := WorkingHours{
		Intervals:  IntervalSet{{50, 150}, {0, 100}},
		TimezoneID: "Europe/Berlin",
	}
	normalized := hours.Normalized()
	want := WorkingHours{
		Intervals:  IntervalSet{{0, 150}},
		TimezoneID: "Europe/Berlin",
	}
	if !normalized.Equal(want) {
		t.Fatalf("Normalized() = %+v, want %+v", normalized, want)
	}
	if normalized.Equal(WorkingHours{Intervals: IntervalSet{{0, 150}}, TimezoneID: "UTC"}) {
		t.Error("hours with different timezone ids should not be equal")
	}
}
