package hours

import "testing"

// sampleWeek: Monday 09:00-17:00, Tuesday 10:00-14:00, Friday
// 20:00-01:00 (rolls into Saturday), Sunday 22:00-01:00 (rolls past
// the week end).
func sampleWeek() IntervalSet {
	return IntervalSet{
		{Start: 9 * 3600, End: 17 * 3600},
		{Start: Day + 10*3600, End: Day + 14*3600},
		{Start: 4*Day + 20*3600, End: 5*Day + 3600},
		{Start: 6*Day + 22*3600, End: Week + 3600},
	}
}

func TestExtractDayIntervals(t *testing.T) {
	schedule := sampleWeek()
	cases := []struct {
		name     string
		dayIndex int
		want     IntervalSet
	}{
		{"monday business hours", 0, IntervalSet{{9 * 3600, 17 * 3600}}},
		{"tuesday business hours", 1, IntervalSet{{10 * 3600, 14 * 3600}}},
		{"wednesday closed", 2, nil},
		{"friday evening with overshoot", 4, IntervalSet{{20 * 3600, Day + 3600}}},
		// Friday's spill past midnight shows up at the start of
		// Saturday's window.
		{"saturday carries friday tail", 5, IntervalSet{{0, 3600}}},
		{"sunday evening with week overshoot", 6, IntervalSet{{22 * 3600, Day + 3600}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExtractDayIntervals(schedule, c.dayIndex)
			if !got.Equal(c.want) {
				t.Fatalf("ExtractDayIntervals(day %d) = %+v, want %+v", c.dayIndex, got, c.want)
			}
		})
	}
}

func TestExtractDayIntervalsFullWeek(t *testing.T) {
	always := IntervalSet{{0, Week}}
	got := ExtractDayIntervals(always, 2)
	want := IntervalSet{{0, Day + InNextDayMax}}
	if !got.Equal(want) {
		t.Fatalf("ExtractDayIntervals(always open, 2) = %+v, want %+v", got, want)
	}
}

func TestRemoveDayIntervals(t *testing.T) {
	schedule := sampleWeek()
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		removed := RemoveDayIntervals(schedule, dayIndex)
		if left := ExtractDayIntervals(removed, dayIndex); !left.IsEmpty() {
			t.Errorf("day %d still has %+v after removal", dayIndex, left)
		}
	}

	// Friday's interval is truncated at the Saturday window, not
	// dropped with it.
	removed := RemoveDayIntervals(schedule, 5)
	want := IntervalSet{
		{9 * 3600, 17 * 3600},
		{Day + 10*3600, Day + 14*3600},
		{4*Day + 20*3600, 5 * Day},
		{6*Day + 22*3600, Week + 3600},
	}
	if !removed.Equal(want) {
		t.Fatalf("RemoveDayIntervals(day 5) = %+v, want %+v", removed, want)
	}
}

func TestReplaceDayIntervals(t *testing.T) {
	schedule := sampleWeek()
	replacement := IntervalSet{{8 * 3600, 12 * 3600}, {13 * 3600, 18 * 3600}}
	got := ReplaceDayIntervals(schedule, 2, replacement)
	want := IntervalSet{
		{9 * 3600, 17 * 3600},
		{Day + 10*3600, Day + 14*3600},
		{2*Day + 8*3600, 2*Day + 12*3600},
		{2*Day + 13*3600, 2*Day + 18*3600},
		{4*Day + 20*3600, 5*Day + 3600},
		{6*Day + 22*3600, Week + 3600},
	}
	if !got.Equal(want) {
		t.Fatalf("ReplaceDayIntervals = %+v, want %+v", got, want)
	}

	// Replacing with nothing clears the day.
	cleared := ReplaceDayIntervals(schedule, 0, nil)
	if left := ExtractDayIntervals(cleared, 0); !left.IsEmpty() {
		t.Fatalf("day 0 still has %+v after empty replacement", left)
	}
}

func TestExtractReplaceRoundTrip(t *testing.T) {
	schedules := []IntervalSet{
		sampleWeek(),
		{{0, Week}},
		{{3 * 3600, 4 * 3600}},
		nil,
	}
	for _, schedule := range schedules {
		normalized := schedule.Normalized()
		for dayIndex := 0; dayIndex < 7; dayIndex++ {
			extracted := ExtractDayIntervals(schedule, dayIndex)
			restored := ReplaceDayIntervals(schedule, dayIndex, extracted)
			if !restored.Equal(normalized) {
				t.Errorf("day %d: round trip of %+v gave %+v, want %+v",
					dayIndex, schedule, restored, normalized)
			}
		}
	}
}
