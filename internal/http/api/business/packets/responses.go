package packets

import (
	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/model"
)

type HoursResponse struct {
	TimezoneID string           `json:"timezone_id"`
	Intervals  []hours.Interval `json:"intervals"`
	Set        bool             `json:"set"`
}

// BusinessResponse carries the profile surface: Details bundles hours
// and location, Set reports whether there is anything to render.
type BusinessResponse struct {
	ID      int                   `json:"id"`
	Name    string                `json:"name"`
	Details model.BusinessDetails `json:"details"`
	Set     bool                  `json:"set"`
	Open    bool                  `json:"open"`
}

type DayHoursResponse struct {
	DayIndex  int              `json:"day_index"`
	Intervals []hours.Interval `json:"intervals"`
}

type OpenResponse struct {
	Open       bool   `json:"open"`
	TimezoneID string `json:"timezone_id"`
}
