package routes

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/datetime"
)

const today = "today"

// Selector picks the schedule a request is answered from. The zero value
// leaves the choice to the API, which uses the current schedule.
type Selector struct {
	Schedule int `validate:"gte=0"`
	Date     *datetime.Date
	Today    bool
}

func CurrentSchedule() Selector {
	return Selector{}
}

// Schedule selects a schedule by its number (sched=).
func Schedule(number int) Selector {
	return Selector{Schedule: number}
}

func Today() Selector {
	return Selector{Today: true}
}

// OnDate selects the schedule in effect on the day of t.
func OnDate(t time.Time) Selector {
	date := datetime.DateOf(t)
	return Selector{Date: &date}
}

// Values returns the query parameters for the selector, at most one of
// sched and date.
func (s Selector) Values() (url.Values, error) {
	if err := bart.Validate(s); err != nil {
		return nil, err
	}

	set := 0
	for _, selected := range []bool{s.Schedule > 0, s.Date != nil, s.Today} {
		if selected {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("%w: select a schedule number or a date, not both", bart.ErrInvalidOptions)
	}

	params := url.Values{}
	switch {
	case s.Schedule > 0:
		params.Set("sched", strconv.Itoa(s.Schedule))
	case s.Date != nil:
		params.Set("date", s.Date.String())
	case s.Today:
		params.Set("date", today)
	}

	return params, nil
}
