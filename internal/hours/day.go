package hours

// DayWindow returns the extended window owned by a weekday: the
// nominal [dayIndex*Day, (dayIndex+1)*Day) range plus the InNextDayMax
// overshoot for hours that roll past midnight. Day indexes 0..6
// (0 = week start) are a caller contract, not checked here.
func DayWindow(dayIndex int) Interval {
	return Interval{Start: 0, End: Day + InNextDayMax}.Shifted(dayIndex * Day)
}

// ExtractDayIntervals returns the day-relative intervals that fall
// inside the day's extended window, clipped via Intersected. The input
// is normalized first, so the result is itself sorted and disjoint and
// round-trips through ReplaceDayIntervals on the same day.
func ExtractDayIntervals(s IntervalSet, dayIndex int) IntervalSet {
	window := DayWindow(dayIndex)
	var result IntervalSet
	for _, interval := range s.Normalized() {
		if clipped := interval.Intersected(window); !clipped.IsEmpty() {
			result = append(result, clipped.Shifted(-window.Start))
		}
	}
	return result
}

// RemoveDayIntervals subtracts the day's extended window from every
// interval of the normalized set: intervals fully inside are dropped,
// straddlers are truncated to the remainder outside the window, and
// intervals clear of the window pass through unchanged.
func RemoveDayIntervals(s IntervalSet, dayIndex int) IntervalSet {
	window := DayWindow(dayIndex)
	var result IntervalSet
	for _, interval := range s.Normalized() {
		if interval.Intersected(window).IsEmpty() {
			result = append(result, interval)
			continue
		}
		if before := (Interval{Start: interval.Start, End: window.Start}); !before.IsEmpty() {
			result = append(result, before)
		}
		if after := (Interval{Start: window.End, End: interval.End}); !after.IsEmpty() {
			result = append(result, after)
		}
	}
	return result
}

// ReplaceDayIntervals swaps out one day's hours: the day window is
// cleared, the day-relative replacement is shifted onto the day's
// absolute position, and the whole set is renormalized.
func ReplaceDayIntervals(s IntervalSet, dayIndex int, replacement IntervalSet) IntervalSet {
	result := RemoveDayIntervals(s, dayIndex)
	for _, interval := range replacement {
		if !interval.IsEmpty() {
			result = append(result, interval.Shifted(dayIndex*Day))
		}
	}
	return result.Normalized()
}
