package stations

import (
	"github.com/jinzhu/copier"
)

type StationRow struct {
	Abbr      string  `csv:"abbr"`
	Name      string  `csv:"name"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
	Address   string  `csv:"address"`
	City      string  `csv:"city"`
	County    string  `csv:"county"`
	Zipcode   string  `csv:"zipcode"`
}

func stationRows(stations []Station) ([]StationRow, error) {
	var rows []StationRow
	if err := copier.Copy(&rows, &stations); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *ListResponse) Rows() (any, error) {
	return stationRows(r.Stations.Station)
}

func (r *InfoResponse) Rows() (any, error) {
	return stationRows([]Station{r.Stations.Station.Station})
}

type AccessRow struct {
	Abbr            string `csv:"abbr"`
	ParkingFlag     bool   `csv:"parking"`
	BikeFlag        bool   `csv:"bikes"`
	BikeStationFlag bool   `csv:"bike_station"`
	LockerFlag      bool   `csv:"lockers"`
	ParkingFillTime string `csv:"fill_time"`
}

func (r *AccessResponse) Rows() (any, error) {
	var row AccessRow
	if err := copier.Copy(&row, &r.Stations.Station); err != nil {
		return nil, err
	}

	if fillTime, ok := r.Stations.Station.FillTime.Get(); ok {
		row.ParkingFillTime = fillTime.String()
	}

	return []AccessRow{row}, nil
}
