// Package stations binds stn.aspx: the station list, station details and
// station access information.
package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/fields"
)

var (
	ListEndpoint   = bart.Endpoint{Script: "stn", Command: "stns"}
	InfoEndpoint   = bart.Endpoint{Script: "stn", Command: "stninfo"}
	AccessEndpoint = bart.Endpoint{Script: "stn", Command: "stnaccess"}
)

type Station struct {
	Name      string            `json:"name" groups:"basic"`
	Abbr      constants.Station `json:"abbr" groups:"basic"`
	Latitude  fields.Float      `json:"gtfs_latitude" groups:"basic"`
	Longitude fields.Float      `json:"gtfs_longitude" groups:"basic"`
	Address   string            `json:"address"`
	City      string            `json:"city" groups:"basic"`
	County    string            `json:"county"`
	State     string            `json:"state"`
	Zipcode   string            `json:"zipcode"`
}

type ListResponse struct {
	Stations struct {
		Station fields.List[Station] `json:"station" groups:"basic"`
	} `json:"stations" groups:"basic"`
	Message bart.Message `json:"message"`
}

// Routes is {"route": [...]} or "" for a station without routes in that
// direction.
type Routes struct {
	Route fields.List[string] `json:"route"`
}

func (r *Routes) UnmarshalJSON(data []byte) error {
	if fields.Blank(data) {
		*r = Routes{}
		return nil
	}

	type plain Routes
	return json.Unmarshal(data, (*plain)(r))
}

type Platforms struct {
	Platform fields.List[string] `json:"platform"`
}

func (p *Platforms) UnmarshalJSON(data []byte) error {
	if fields.Blank(data) {
		*p = Platforms{}
		return nil
	}

	type plain Platforms
	return json.Unmarshal(data, (*plain)(p))
}

type StationInfo struct {
	Station

	NorthRoutes    Routes       `json:"north_routes" groups:"basic"`
	SouthRoutes    Routes       `json:"south_routes" groups:"basic"`
	NorthPlatforms Platforms    `json:"north_platforms" groups:"basic"`
	SouthPlatforms Platforms    `json:"south_platforms" groups:"basic"`
	PlatformInfo   fields.CDATA `json:"platform_info"`
	Intro          fields.CDATA `json:"intro"`
	CrossStreet    fields.CDATA `json:"cross_street"`
	Food           fields.CDATA `json:"food"`
	Shopping       fields.CDATA `json:"shopping"`
	Attraction     fields.CDATA `json:"attraction"`
	Link           fields.CDATA `json:"link"`
}

type InfoResponse struct {
	Stations struct {
		Station StationInfo `json:"station" groups:"basic"`
	} `json:"stations" groups:"basic"`
	Message bart.Message `json:"message"`
}

// ShortTime is a CDATA wrapped "h:mm AM" time.
type ShortTime struct {
	datetime.Time
}

func (t *ShortTime) UnmarshalJSON(data []byte) error {
	var text fields.CDATA
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	parsed, err := datetime.ParseShortTime(text.String())
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}

type StationAccess struct {
	ParkingFlag     fields.Flag       `json:"@parking_flag" groups:"basic"`
	BikeFlag        fields.Flag       `json:"@bike_flag" groups:"basic"`
	BikeStationFlag fields.Flag       `json:"@bike_station_flag" groups:"basic"`
	LockerFlag      fields.Flag       `json:"@locker_flag" groups:"basic"`
	Name            constants.Station `json:"name" groups:"basic"`
	Abbr            constants.Station `json:"abbr" groups:"basic"`
	Entering        fields.CDATA      `json:"entering"`
	Exiting         fields.CDATA      `json:"exiting"`
	Parking         fields.CDATA      `json:"parking"`

	// FillTime is when the car park usually fills up, absent when the
	// station doesn't report one.
	FillTime fields.Optional[ShortTime] `json:"fill_time" groups:"basic"`

	CarShare        fields.CDATA `json:"car_share"`
	Lockers         fields.CDATA `json:"lockers"`
	BikeStationText fields.CDATA `json:"bike_station_text"`
	Destinations    fields.CDATA `json:"destinations"`
	TransitInfo     fields.CDATA `json:"transit_info"`
	Link            fields.CDATA `json:"link"`
}

type AccessResponse struct {
	Stations struct {
		Station StationAccess `json:"station" groups:"basic"`
	} `json:"stations" groups:"basic"`
	Message bart.Message `json:"message"`
}

func stationParams(station constants.Station) (url.Values, error) {
	if !station.Valid() {
		return nil, fmt.Errorf("%w: unknown station %q", bart.ErrInvalidOptions, station)
	}

	return url.Values{"orig": {station.Abbr()}}, nil
}

func ListURL(c *bart.Client) string {
	return c.URL(ListEndpoint, nil)
}

func InfoURL(c *bart.Client, station constants.Station) (string, error) {
	params, err := stationParams(station)
	if err != nil {
		return "", err
	}

	return c.URL(InfoEndpoint, params), nil
}

func AccessURL(c *bart.Client, station constants.Station) (string, error) {
	params, err := stationParams(station)
	if err != nil {
		return "", err
	}
	params.Set("l", "1")

	return c.URL(AccessEndpoint, params), nil
}

func List(ctx context.Context, c *bart.Client) (*ListResponse, error) {
	return bart.Fetch[ListResponse](ctx, c, ListEndpoint, nil)
}

func Info(ctx context.Context, c *bart.Client, station constants.Station) (*InfoResponse, error) {
	params, err := stationParams(station)
	if err != nil {
		return nil, err
	}

	return bart.Fetch[InfoResponse](ctx, c, InfoEndpoint, params)
}

// Access requests the access details including the legend.
func Access(ctx context.Context, c *bart.Client, station constants.Station) (*AccessResponse, error) {
	params, err := stationParams(station)
	if err != nil {
		return nil, err
	}
	params.Set("l", "1")

	return bart.Fetch[AccessResponse](ctx, c, AccessEndpoint, params)
}

// InfoMany requests several stations concurrently, results follow the order
// of stations.
func InfoMany(ctx context.Context, c *bart.Client, stations ...constants.Station) ([]*InfoResponse, error) {
	return bart.FanOut(ctx, stations, func(ctx context.Context, station constants.Station) (*InfoResponse, error) {
		return Info(ctx, c, station)
	})
}
