package model

import (
	"time"

	"github.com/OpenHoursHQ/openhours/internal/hours"
)

type Business struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Address    string    `db:"address" json:"address"`
	Latitude   *float64  `db:"latitude" json:"latitude"`
	Longitude  *float64  `db:"longitude" json:"longitude"`
	TimezoneID string    `db:"timezone_id" json:"timezone_id"`
	CreatedBy  int       `db:"created_by" json:"created_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BusinessLocation is the displayable address of a business. Presence
// of the address is the truthiness signal; coordinates are optional.
type BusinessLocation struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (l BusinessLocation) IsSet() bool {
	return l.Address != ""
}

// BusinessDetails bundles everything the profile surface renders.
type BusinessDetails struct {
	Hours    hours.WorkingHours `json:"hours"`
	Location BusinessLocation   `json:"location"`
}

func (d BusinessDetails) IsSet() bool {
	return d.Hours.IsSet() || d.Location.IsSet()
}

func (b Business) Location() BusinessLocation {
	return BusinessLocation{
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}
