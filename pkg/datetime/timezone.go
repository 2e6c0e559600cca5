package datetime

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFormat = errors.New("invalid date/time format")

// TimeZone is one of the two zone abbreviations the API appends to times.
// The zero value means no zone was given.
type TimeZone int

const (
	NoTimeZone TimeZone = iota
	PDT
	PST
)

const (
	pdtName = "PDT"
	pstName = "PST"

	pdtOffsetHours = 7
	pstOffsetHours = 8
)

var (
	pdtLocation = time.FixedZone(pdtName, -pdtOffsetHours*60*60)
	pstLocation = time.FixedZone(pstName, -pstOffsetHours*60*60)
)

func ParseTimeZone(s string) (TimeZone, error) {
	switch s {
	case pdtName:
		return PDT, nil
	case pstName:
		return PST, nil
	default:
		return NoTimeZone, fmt.Errorf("%w: %q does not match any timezone", ErrInvalidFormat, s)
	}
}

// TimeZoneFromOffset maps hours west of UTC to a zone.
func TimeZoneFromOffset(hours int) (TimeZone, error) {
	switch hours {
	case pdtOffsetHours:
		return PDT, nil
	case pstOffsetHours:
		return PST, nil
	default:
		return NoTimeZone, fmt.Errorf("%w: offset %d does not match any timezone", ErrInvalidFormat, hours)
	}
}

// Offset returns the hours west of UTC, 0 for NoTimeZone.
func (z TimeZone) Offset() int {
	switch z {
	case PDT:
		return pdtOffsetHours
	case PST:
		return pstOffsetHours
	default:
		return 0
	}
}

func (z TimeZone) Location() *time.Location {
	switch z {
	case PDT:
		return pdtLocation
	case PST:
		return pstLocation
	default:
		return time.UTC
	}
}

func (z TimeZone) String() string {
	switch z {
	case PDT:
		return pdtName
	case PST:
		return pstName
	default:
		return ""
	}
}

func (z TimeZone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *TimeZone) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeZone(string(text))
	if err != nil {
		return err
	}

	*z = parsed
	return nil
}

// splitZone separates a trailing zone abbreviation from the rest of s.
func splitZone(s string) (string, TimeZone, error) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			zone, err := ParseTimeZone(s[i+1:])
			if err != nil {
				return "", NoTimeZone, err
			}
			return s[:i], zone, nil
		}
	}

	return "", NoTimeZone, fmt.Errorf("%w: %q has no timezone suffix", ErrInvalidFormat, s)
}
