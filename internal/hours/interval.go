package hours

// Seconds in one nominal day, one week, and the maximum a day's hours
// may roll past midnight into the next day.
const (
	Day          = 24 * 3600
	Week         = 7 * Day
	InNextDayMax = 6 * 3600
)

// Interval is a half-open range [Start, End) in week-relative seconds
// (0 = start of the week). The zero value is the canonical empty
// interval.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IsEmpty reports whether the interval covers no time at all.
func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

// Shifted translates both endpoints by offset seconds. There is no
// clamping: shifting by ±Week is how callers align a day's hours onto
// a common axis across the week boundary.
func (i Interval) Shifted(offset int) Interval {
	return Interval{Start: i.Start + offset, End: i.End + offset}
}

// United returns the bounding union of two intervals; the empty
// interval is the identity. The union is not gap-aware, so callers
// only unite ranges that overlap or touch.
func (i Interval) United(other Interval) Interval {
	if i.IsEmpty() {
		return other
	} else if other.IsEmpty() {
		return i
	}
	return Interval{
		Start: min(i.Start, other.Start),
		End:   max(i.End, other.End),
	}
}

// Intersected returns the overlap of two intervals, or the canonical
// empty interval when they do not overlap.
func (i Interval) Intersected(other Interval) Interval {
	result := Interval{
		Start: max(i.Start, other.Start),
		End:   min(i.End, other.End),
	}
	if result.IsEmpty() {
		return Interval{}
	}
	return result
}
