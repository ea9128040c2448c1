package hours

import "sort"

// IntervalSet is an ordered list of intervals. A raw set carries no
// invariant: entries may overlap, repeat, sit in any order, or be
// anchored outside [0, Week).
type IntervalSet []Interval

// IsEmpty reports whether the set contains no real time at all.
func (s IntervalSet) IsEmpty() bool {
	for _, interval := range s {
		if !interval.IsEmpty() {
			return false
		}
	}
	return true
}

// Equal compares two sets element by element.
func (s IntervalSet) Equal(other IntervalSet) bool {
	if len(s) != len(other) {
		return false
	}
	for index, interval := range s {
		if interval != other[index] {
			return false
		}
	}
	return true
}

// Normalized returns the minimal sorted list of disjoint intervals
// covering the same union of time, anchored into [0, Week). Only the
// last interval may extend past Week, by at most InNextDayMax, for
// hours that roll past the end of the week into the next cycle. A tail
// past Week that reaches an interval at the start of the week is
// folded into it (merge if touching); otherwise the overshoot is kept
// explicit. Normalized is idempotent.
func (s IntervalSet) Normalized() IntervalSet {
	var entries IntervalSet
	for _, interval := range s {
		if interval.IsEmpty() {
			continue
		}
		if interval.End-interval.Start >= Week {
			// Covers the full cycle, nothing else can add to it.
			return IntervalSet{{Start: 0, End: Week}}
		}
		// Anchor the start into [0, Week).
		anchored := ((interval.Start % Week) + Week) % Week
		interval = interval.Shifted(anchored - interval.Start)
		if interval.End > Week+InNextDayMax {
			// Past the representable overshoot: wrap the tail onto
			// the front of the week instead of dropping it.
			entries = append(entries,
				Interval{Start: interval.Start, End: Week},
				Interval{Start: 0, End: interval.End - Week})
		} else {
			entries = append(entries, interval)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Start != entries[b].Start {
			return entries[a].Start < entries[b].Start
		}
		return entries[a].End < entries[b].End
	})

	var result IntervalSet
	accumulator := entries[0]
	for _, next := range entries[1:] {
		if next.Start <= accumulator.End {
			accumulator = accumulator.United(next)
		} else {
			result = append(result, accumulator)
			accumulator = next
		}
	}
	result = append(result, accumulator)

	last := result[len(result)-1]
	if overshoot := last.End - Week; overshoot > 0 && result[0].Start <= overshoot {
		// The wrapped tail overlaps or touches the first interval of
		// the week: fold it in and renormalize the truncated list.
		result[len(result)-1].End = Week
		folded := append(IntervalSet{{Start: 0, End: overshoot}}, result...)
		return folded.Normalized()
	}
	return result
}

// WorkingHours is a full weekly opening-hours schedule: the
// interval set plus the IANA timezone it is anchored to. Hours count
// as set as soon as a timezone id is present, even when the intervals
// are empty.
type WorkingHours struct {
	Intervals  IntervalSet `json:"intervals"`
	TimezoneID string      `json:"timezone_id"`
}

// Normalized returns the hours with a normalized interval set.
func (h WorkingHours) Normalized() WorkingHours {
	return WorkingHours{
		Intervals:  h.Intervals.Normalized(),
		TimezoneID: h.TimezoneID,
	}
}

// IsSet reports whether working hours are effectively present.
func (h WorkingHours) IsSet() bool {
	return h.TimezoneID != ""
}

// Equal compares timezone id and intervals structurally.
func (h WorkingHours) Equal(other WorkingHours) bool {
	return h.TimezoneID == other.TimezoneID &&
		h.Intervals.Equal(other.Intervals)
}
