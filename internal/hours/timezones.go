package hours

// Timezone is one catalog entry a business can anchor its hours to.
// UTCOffset is the standard (non-DST) offset in seconds.
type Timezone struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UTCOffset int    `json:"utc_offset"`
}

// Timezones is the curated catalog offered to clients. Offsets are
// standard-time values; actual open/closed checks go through the IANA
// database, not this list.
var Timezones = []Timezone{
	{ID: "Pacific/Honolulu", Name: "Honolulu", UTCOffset: -10 * 3600},
	{ID: "America/Anchorage", Name: "Anchorage", UTCOffset: -9 * 3600},
	{ID: "America/Los_Angeles", Name: "Los Angeles", UTCOffset: -8 * 3600},
	{ID: "America/Denver", Name: "Denver", UTCOffset: -7 * 3600},
	{ID: "America/Chicago", Name: "Chicago", UTCOffset: -6 * 3600},
	{ID: "America/New_York", Name: "New York", UTCOffset: -5 * 3600},
	{ID: "America/Caracas", Name: "Caracas", UTCOffset: -4 * 3600},
	{ID: "America/Sao_Paulo", Name: "São Paulo", UTCOffset: -3 * 3600},
	{ID: "UTC", Name: "UTC", UTCOffset: 0},
	{ID: "Europe/London", Name: "London", UTCOffset: 0},
	{ID: "Europe/Berlin", Name: "Berlin", UTCOffset: 1 * 3600},
	{ID: "Europe/Paris", Name: "Paris", UTCOffset: 1 * 3600},
	{ID: "Africa/Cairo", Name: "Cairo", UTCOffset: 2 * 3600},
	{ID: "Europe/Kyiv", Name: "Kyiv", UTCOffset: 2 * 3600},
	{ID: "Europe/Moscow", Name: "Moscow", UTCOffset: 3 * 3600},
	{ID: "Asia/Dubai", Name: "Dubai", UTCOffset: 4 * 3600},
	{ID: "Asia/Karachi", Name: "Karachi", UTCOffset: 5 * 3600},
	{ID: "Asia/Kolkata", Name: "Kolkata", UTCOffset: 5*3600 + 1800},
	{ID: "Asia/Dhaka", Name: "Dhaka", UTCOffset: 6 * 3600},
	{ID: "Asia/Bangkok", Name: "Bangkok", UTCOffset: 7 * 3600},
	{ID: "Asia/Singapore", Name: "Singapore", UTCOffset: 8 * 3600},
	{ID: "Asia/Tokyo", Name: "Tokyo", UTCOffset: 9 * 3600},
	{ID: "Australia/Sydney", Name: "Sydney", UTCOffset: 10 * 3600},
	{ID: "Pacific/Auckland", Name: "Auckland", UTCOffset: 12 * 3600},
}

// TimezoneByID looks a catalog entry up by IANA id.
func TimezoneByID(id string) (Timezone, bool) {
	for _, timezone := range Timezones {
		if timezone.ID == id {
			return timezone, true
		}
	}
	return Timezone{}, false
}
