package routes

import (
	"github.com/jinzhu/copier"
)

type RouteRow struct {
	Number   int    `csv:"number"`
	RouteID  string `csv:"route_id"`
	Abbr     string `csv:"abbr"`
	Name     string `csv:"name"`
	HexColor string `csv:"color"`
}

func (r *ListResponse) Rows() (any, error) {
	var rows []RouteRow
	if err := copier.Copy(&rows, &r.Routes.Route); err != nil {
		return nil, err
	}

	return rows, nil
}

// StopRow is one station along a route.
type StopRow struct {
	Sequence int    `csv:"sequence"`
	Abbr     string `csv:"abbr"`
	Name     string `csv:"name"`
}

func (r *InfoResponse) Rows() (any, error) {
	stations := r.Routes.Route.Config.Station

	rows := make([]StopRow, 0, len(stations))
	for i, station := range stations {
		rows = append(rows, StopRow{
			Sequence: i + 1,
			Abbr:     station.Abbr(),
			Name:     station.Name(),
		})
	}

	return rows, nil
}
