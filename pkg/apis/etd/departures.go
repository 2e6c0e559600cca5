package etd

import (
	"github.com/travigo/bart/pkg/constants"
	"golang.org/x/exp/slices"
)

// Departure is one estimate with the station and destination it belongs to.
type Departure struct {
	Station     constants.Station   `csv:"station" json:"station"`
	Destination string              `csv:"destination" json:"destination"`
	Minutes     Minutes             `csv:"minutes" json:"minutes"`
	Platform    int                 `csv:"platform" json:"platform"`
	Direction   constants.Direction `csv:"direction" json:"direction"`
	Length      int                 `csv:"length" json:"length"`
	Color       constants.Color     `csv:"color" json:"color"`
	BikeFlag    bool                `csv:"bikes" json:"bikeflag"`
	Delay       int                 `csv:"delay" json:"delay"`
	Cancelled   bool                `csv:"cancelled" json:"cancelled"`
}

// Departures flattens the response, soonest first. Estimates due at the same
// time keep their response order.
func (r *Response) Departures() []Departure {
	var departures []Departure

	for _, station := range r.Station {
		for _, etd := range station.ETD {
			for _, estimate := range etd.Estimate {
				departures = append(departures, Departure{
					Station:     station.Abbr,
					Destination: etd.Destination,
					Minutes:     estimate.Minutes,
					Platform:    int(estimate.Platform),
					Direction:   estimate.Direction,
					Length:      int(estimate.Length),
					Color:       estimate.HexColor,
					BikeFlag:    bool(estimate.BikeFlag),
					Delay:       int(estimate.Delay),
					Cancelled:   bool(estimate.CancelFlag),
				})
			}
		}
	}

	slices.SortStableFunc(departures, func(a, b Departure) int {
		return int(a.Minutes) - int(b.Minutes)
	})

	return departures
}

func (r *Response) Rows() (any, error) {
	return r.Departures(), nil
}
