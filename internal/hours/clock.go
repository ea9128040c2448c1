package hours

import "time"

// WeekSecond maps a wall-clock moment onto the repeating week axis,
// with day 0 = Monday.
func WeekSecond(t time.Time) int {
	dayIndex := (int(t.Weekday()) + 6) % 7
	return dayIndex*Day + t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// IsOpenAt reports whether the hours cover the given moment, resolved
// in the schedule's timezone. Unset hours are never open; an unknown
// timezone id falls back to UTC.
func (h WorkingHours) IsOpenAt(t time.Time) bool {
	if !h.IsSet() {
		return false
	}
	location, err := time.LoadLocation(h.TimezoneID)
	if err != nil {
		location = time.UTC
	}
	probe := Interval{Start: 0, End: 1}.Shifted(WeekSecond(t.In(location)))
	for _, interval := range h.Intervals.Normalized() {
		if !interval.Intersected(probe).IsEmpty() {
			return true
		}
		// An overshoot past the week end covers the first hours of
		// the next cycle.
		if !interval.Shifted(-Week).Intersected(probe).IsEmpty() {
			return true
		}
	}
	return false
}
