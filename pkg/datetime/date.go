package datetime

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "01/02/2006"
	LongDateLayout = "Jan _2, 2006"

	dateLength        = 10
	longDateMinLength = 11
	longDateMaxLength = 12
)

// Date is a calendar day without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate reads "10/18/2026" (anything after the first ten characters is
// ignored, the API pads some dates with a space) or "Oct 18, 2026".
func ParseDate(s string) (Date, error) {
	if len(s) == longDateMinLength || len(s) == longDateMaxLength {
		if parsed, err := time.Parse(LongDateLayout, s); err == nil {
			return DateOf(parsed), nil
		}
	}

	if len(s) >= dateLength {
		if parsed, err := time.Parse(DateLayout, s[:dateLength]); err == nil {
			return DateOf(parsed), nil
		}
	}

	return Date{}, fmt.Errorf("%w: can't parse date %q", ErrInvalidFormat, s)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// In returns midnight of the day in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.In(time.UTC).Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
