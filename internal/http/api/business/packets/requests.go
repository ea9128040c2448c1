package packets

import "github.com/OpenHoursHQ/openhours/internal/hours"

type CreateBusinessRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdateBusinessRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// SetHoursRequest replaces the full weekly schedule. Intervals are
// week-relative seconds and may arrive unsorted or overlapping; the
// server stores them normalized.
type SetHoursRequest struct {
	TimezoneID string           `json:"timezone_id" binding:"required"`
	Intervals  []hours.Interval `json:"intervals"`
}

// SetDayHoursRequest replaces one weekday's schedule with day-relative
// intervals in [0, Day+InNextDayMax).
type SetDayHoursRequest struct {
	Intervals []hours.Interval `json:"intervals"`
}
