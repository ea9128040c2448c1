package model

import (
	"testing"

	"github.com/OpenHoursHQ/openhours/internal/hours"
)

func TestBusinessLocationIsSet(t *testing.T) {
	latitude := 52.52
	cases := []struct {
		name     string
		location BusinessLocation
		want     bool
	}{
		{"zero value", BusinessLocation{}, false},
		{"coordinates without address", BusinessLocation{Latitude: &latitude}, false},
		{"address only", BusinessLocation{Address: "1 Main St"}, true},
		{"address and coordinates", BusinessLocation{Address: "1 Main St", Latitude: &latitude}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.location.IsSet(); got != c.want {
				t.Fatalf("IsSet() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBusinessDetailsIsSet(t *testing.T) {
	withTimezone := hours.WorkingHours{TimezoneID: "UTC"}
	withAddress := BusinessLocation{Address: "1 Main St"}
	cases := []struct {
		name    string
		details BusinessDetails
		want    bool
	}{
		{"zero value", BusinessDetails{}, false},
		{"hours only", BusinessDetails{Hours: withTimezone}, true},
		{"location only", BusinessDetails{Location: withAddress}, true},
		{"both", BusinessDetails{Hours: withTimezone, Location: withAddress}, true},
		{"intervals without timezone", BusinessDetails{
			Hours: hours.WorkingHours{Intervals: hours.IntervalSet{{Start: 0, End: 3600}}},
		}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.details.IsSet(); got != c.want {
				t.Fatalf("IsSet() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBusinessLocationAccessor(t *testing.T) {
	longitude := 13.4
	business := Business{Address: "1 Main St", Longitude: &longitude}
	location := business.Location()
	if location.Address != "1 Main St" || location.Longitude != &longitude || location.Latitude != nil {
		t.Fatalf("Location() = %+v", location)
	}
}
