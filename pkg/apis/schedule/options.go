package schedule

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
)

const (
	// MaxTrips caps Before+After.
	MaxTrips = 6

	requestTimeLayout = "03:04 pm"

	now   = "now"
	today = "today"
)

// TripOptions is how many trips to list around the requested time.
type TripOptions struct {
	Before int `validate:"gte=0,lte=4"`
	After  int `validate:"gte=1,lte=4"`
}

func DefaultTripOptions() TripOptions {
	return TripOptions{Before: 2, After: 2}
}

func (t TripOptions) Validate() error {
	if err := bart.Validate(t); err != nil {
		return err
	}

	if t.Before+t.After > MaxTrips {
		return fmt.Errorf("%w: at most %d trips, got %d before and %d after", bart.ErrInvalidOptions, MaxTrips, t.Before, t.After)
	}

	return nil
}

// Options describe a trip planner request. A nil Time means now, a nil Date
// today and nil Trips the default of two before and two after.
type Options struct {
	Origin      constants.Station `validate:"required,station"`
	Destination constants.Station `validate:"required,station,nefield=Origin"`
	Time        *datetime.Time
	Date        *datetime.Date
	Trips       *TripOptions
}

// ArriveOptions plan a trip by the time it should arrive.
type ArriveOptions = Options

// DepartOptions plan a trip by the time it should leave.
type DepartOptions = Options

func (o Options) Validate() error {
	if err := bart.Validate(o); err != nil {
		return err
	}

	if o.Trips != nil {
		return o.Trips.Validate()
	}

	return nil
}

func formatRequestTime(t datetime.Time) string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(requestTimeLayout)
}

func (o Options) params() (url.Values, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	trips := DefaultTripOptions()
	if o.Trips != nil {
		trips = *o.Trips
	}

	params := url.Values{
		"orig": {o.Origin.Abbr()},
		"dest": {o.Destination.Abbr()},
		"time": {now},
		"date": {today},
		"b":    {strconv.Itoa(trips.Before)},
		"a":    {strconv.Itoa(trips.After)},
		"l":    {"1"},
	}

	if o.Time != nil {
		params.Set("time", formatRequestTime(*o.Time))
	}
	if o.Date != nil {
		params.Set("date", o.Date.String())
	}

	return params, nil
}
