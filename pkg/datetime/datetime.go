package datetime

import (
	"fmt"
	"time"
)

const (
	DateTimeLayout = "Mon Jan 02 2006 03:04 PM"

	dateTimeLength = 24
)

// DateTime is an instant reported with its zone abbreviation, as used for
// advisory posted and expiry times: "Thu Oct 18 2026 03:04 PM PDT".
type DateTime struct {
	Instant time.Time
	Zone    TimeZone
}

func ParseDateTime(s string) (DateTime, error) {
	local, zone, err := splitZone(s)
	if err != nil {
		return DateTime{}, err
	}

	if len(local) < dateTimeLength {
		return DateTime{}, fmt.Errorf("%w: datetime %q is too short", ErrInvalidFormat, s)
	}

	instant, err := time.ParseInLocation(DateTimeLayout, local[:dateTimeLength], zone.Location())
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: can't parse datetime %q", ErrInvalidFormat, s)
	}

	return DateTime{Instant: instant, Zone: zone}, nil
}

func (d DateTime) String() string {
	return d.Instant.In(d.Zone.Location()).Format(DateTimeLayout) + " " + d.Zone.String()
}

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
