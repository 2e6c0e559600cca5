package etd

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/bart/pkg/util"
)

// FilterEnv is what a filter expression sees for each estimate, e.g.
// `Minutes <= 10 && BikeFlag` or `Destination == "SFO Airport"`.
type FilterEnv struct {
	Station      string
	StationName  string
	Destination  string
	Abbreviation string
	Limited      bool

	Minutes   int
	Leaving   bool
	Platform  int
	Direction string
	Length    int
	Color     string
	BikeFlag  bool
	Delay     int
	Cancelled bool
	Dynamic   bool
}

func newFilterEnv(station Station, etd ETD, estimate Estimate) FilterEnv {
	return FilterEnv{
		Station:      station.Abbr.Abbr(),
		StationName:  station.Name,
		Destination:  etd.Destination,
		Abbreviation: etd.Abbreviation.Abbr(),
		Limited:      bool(etd.Limited),

		Minutes:   int(estimate.Minutes),
		Leaving:   estimate.Minutes.IsLeaving(),
		Platform:  int(estimate.Platform),
		Direction: estimate.Direction.Name(),
		Length:    int(estimate.Length),
		Color:     estimate.Color.Name(),
		BikeFlag:  bool(estimate.BikeFlag),
		Delay:     int(estimate.Delay),
		Cancelled: bool(estimate.CancelFlag),
		Dynamic:   bool(estimate.DynamicFlag),
	}
}

func CompileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expression, err)
	}

	return program, nil
}

// Filter returns a copy of response holding only the estimates expression
// matches. Destinations left without estimates are dropped, stations are
// kept.
func Filter(response *Response, expression string) (*Response, error) {
	program, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}

	filtered := &Response{
		Date:    response.Date,
		Time:    response.Time,
		Message: response.Message,
	}

	for _, station := range response.Station {
		kept := station
		kept.ETD = nil

		for _, etd := range station.ETD {
			estimates := append([]Estimate(nil), etd.Estimate...)

			var runErr error
			util.InPlaceFilter(&estimates, func(estimate Estimate) bool {
				if runErr != nil {
					return false
				}

				matched, err := expr.Run(program, newFilterEnv(station, etd, estimate))
				if err != nil {
					runErr = err
					return false
				}

				return matched.(bool)
			})
			if runErr != nil {
				return nil, fmt.Errorf("failed to evaluate filter %q: %w", expression, runErr)
			}

			if len(estimates) > 0 {
				etd.Estimate = estimates
				kept.ETD = append(kept.ETD, etd)
			}
		}

		filtered.Station = append(filtered.Station, kept)
	}

	return filtered, nil
}
