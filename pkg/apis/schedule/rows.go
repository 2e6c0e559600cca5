package schedule

import (
	"strings"

	"github.com/jinzhu/copier"
)

type TripRow struct {
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	DepartsAt   string `csv:"departs"`
	ArrivesAt   string `csv:"arrives"`
	TripTime    int    `csv:"minutes"`
	Fare        string `csv:"fare"`
	Changes     int    `csv:"transfers"`
	Lines       string `csv:"lines"`
}

func (r *Response) Rows() (any, error) {
	trips := r.Trips()

	var rows []TripRow
	if err := copier.Copy(&rows, &trips); err != nil {
		return nil, err
	}

	for i, trip := range trips {
		rows[i].DepartsAt = trip.OriginDate.String() + " " + trip.OriginTime.String()
		rows[i].ArrivesAt = trip.DestinationDate.String() + " " + trip.DestinationTime.String()
		rows[i].Changes = trip.Transfers()

		lines := make([]string, 0, len(trip.Leg))
		for _, leg := range trip.Leg {
			lines = append(lines, leg.Line)
		}
		rows[i].Lines = strings.Join(lines, "|")
	}

	return rows, nil
}

type FareRow struct {
	Class       string  `csv:"class"`
	Description string  `csv:"name"`
	Amount      float64 `csv:"amount"`
}

func (r *FareResponse) Rows() (any, error) {
	fares := r.Fares.Fare

	var rows []FareRow
	if err := copier.Copy(&rows, &fares); err != nil {
		return nil, err
	}

	for i, fare := range fares {
		rows[i].Description = fare.Name.Name()
	}

	return rows, nil
}
