package datetime

import (
	"fmt"
	"strings"
	"time"
)

const (
	TimeLayout      = "03:04:05 PM"
	ShortTimeLayout = "3:04 PM"

	// The API sometimes sends a 24 hour clock followed by a meridiem, e.g.
	// "13:05:00 PM".
	twentyFourHourTimeLayout = "15:04:05 PM"

	timeLength = 11
)

// Time is a clock time, optionally tagged with the zone the API reported.
type Time struct {
	Hour   int
	Minute int
	Second int
	Zone   TimeZone
}

func NewTime(hour, minute, second int) Time {
	return Time{Hour: hour, Minute: minute, Second: second}
}

func clockOf(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseZonedTime reads "03:04:05 PM PDT".
func ParseZonedTime(s string) (Time, error) {
	clock, zone, err := splitZone(s)
	if err != nil {
		return Time{}, err
	}

	parsed, err := ParseTime(clock)
	if err != nil {
		return Time{}, err
	}

	parsed.Zone = zone
	return parsed, nil
}

// ParseTime reads the first eleven characters of s as "03:04:05 PM".
func ParseTime(s string) (Time, error) {
	if len(s) < timeLength {
		return Time{}, fmt.Errorf("%w: time %q is too short", ErrInvalidFormat, s)
	}
	clock := s[:timeLength]

	if parsed, err := time.Parse(TimeLayout, clock); err == nil {
		return clockOf(parsed), nil
	}

	parsed, err := time.Parse(twentyFourHourTimeLayout, clock)
	if err != nil {
		return Time{}, fmt.Errorf("%w: can't parse time %q", ErrInvalidFormat, s)
	}

	return clockOf(parsed), nil
}

// ParseShortTime reads "3:04 PM".
func ParseShortTime(s string) (Time, error) {
	parsed, err := time.Parse(ShortTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return Time{}, fmt.Errorf("%w: can't parse time %q", ErrInvalidFormat, s)
	}

	return clockOf(parsed), nil
}

// ParseLocalTime accepts either the short or the full form, without a zone.
func ParseLocalTime(s string) (Time, error) {
	if parsed, err := ParseShortTime(s); err == nil {
		return parsed, nil
	}

	return ParseTime(s)
}

// ParseAnyTime picks ParseZonedTime when s ends in a known zone and
// ParseLocalTime otherwise.
func ParseAnyTime(s string) (Time, error) {
	if strings.HasSuffix(s, " "+pdtName) || strings.HasSuffix(s, " "+pstName) {
		return ParseZonedTime(s)
	}

	return ParseLocalTime(s)
}

func (t Time) HasZone() bool {
	return t.Zone != NoTimeZone
}

// On places the clock time on a day. Zoned times use their own zone, others
// fall back to loc.
func (t Time) On(date Date, loc *time.Location) time.Time {
	if t.HasZone() {
		loc = t.Zone.Location()
	}

	return time.Date(date.Year, date.Month, date.Day, t.Hour, t.Minute, t.Second, 0, loc)
}

func (t Time) String() string {
	clock := time.Date(0, 1, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).Format(TimeLayout)

	if t.HasZone() {
		return clock + " " + t.Zone.String()
	}
	return clock
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseAnyTime(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// ZonedTime is a Time whose text form must end in a zone.
type ZonedTime struct {
	Time
}

func (z *ZonedTime) UnmarshalText(text []byte) error {
	parsed, err := ParseZonedTime(string(text))
	if err != nil {
		return err
	}

	z.Time = parsed
	return nil
}
