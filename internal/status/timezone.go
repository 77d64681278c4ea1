package status

import (
	"fmt"
	"time"
)

// DefaultTimezone applies when the caller omits the tz parameter.
const DefaultTimezone = "Asia/Bangkok"

// allowedTimezones is the fixed allow list for the tz parameter.
var allowedTimezones = []string{
	"Asia/Bangkok",
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Asia/Tokyo",
	"Australia/Sydney",
	"UTC",
}

// AllowedTimezones returns a copy of the timezone allow list.
func AllowedTimezones() []string {
	return append([]string(nil), allowedTimezones...)
}

// LoadTimezone validates name against the allow list and loads its
// location data. Validation happens here, before any upstream fetch.
func LoadTimezone(name string) (*time.Location, error) {
	for _, tz := range allowedTimezones {
		if tz != name {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("load location %q: %w", name, err)
		}
		return loc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
}

// NewTimestamp renders now in the given zone alongside its canonical
// UTC representations. The label is "TH" for Asia/Bangkok and the zone
// name verbatim otherwise.
func NewTimestamp(now time.Time, tzName string, loc *time.Location) Timestamp {
	utc := now.UTC()
	local := utc.In(loc)

	label := tzName
	if tzName == "Asia/Bangkok" {
		label = "TH"
	}

	return Timestamp{
		Time:     local.Format("15:04"),
		Timezone: label,
		Full:     local.Format("2006-01-02 15:04:05"),
		ISO:      utc.Format("2006-01-02T15:04:05.000Z"),
		Unix:     utc.Unix(),
	}
}
