// Package dateutil provides the filename date stamp and parsing for
// user-supplied date overrides.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date value that matches no accepted format.
var ErrInvalidDate = errors.New("invalid date")

// MaxDateInputLength limits date input length to prevent abuse.
const MaxDateInputLength = 50

// StampLayout is the calendar-date form embedded in derived filenames.
const StampLayout = "2006-01-02"

// stampLayouts are the accepted input forms for a date override.
// Ordered by how likely users are to type them; the ISO stamp form
// comes first because it round-trips with generated filenames.
var stampLayouts = []struct {
	name   string
	layout string
}{
	{"iso", "2006-01-02"},
	{"slash", "2006/01/02"},
	{"short month", "Jan 2, 2006"},
	{"long month", "January 2, 2006"},
}

// Stamp formats t as the UTC calendar date used in filenames. The UTC
// conversion happens here so every caller stamps the same day for the
// same instant regardless of local zone.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// ParseStamp parses a user-supplied date in any accepted form and
// returns midnight UTC of that day. Accepted forms: "2006-01-02",
// "2006/01/02", "Jan 2, 2006", "January 2, 2006".
// Returns ErrInvalidDate if the value is empty, too long, or matches
// no accepted form.
func ParseStamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: value cannot be empty", ErrInvalidDate)
	}
	if len(value) > MaxDateInputLength {
		return time.Time{}, fmt.Errorf("%w: value exceeds %d characters", ErrInvalidDate, MaxDateInputLength)
	}

	for _, l := range stampLayouts {
		t, err := time.ParseInLocation(l.layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (accepted: YYYY-MM-DD, YYYY/MM/DD, \"Jan 2, 2006\", \"January 2, 2006\")", ErrInvalidDate, value)
}
