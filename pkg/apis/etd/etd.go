// Package etd binds etd.aspx, the real time departure estimates.
package etd

import (
	"context"
	"net/url"
	"strconv"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/fields"
)

var Endpoint = bart.Endpoint{Script: "etd", Command: "etd"}

const allStations = "ALL"

type Estimate struct {
	Minutes     Minutes             `json:"minutes" groups:"basic"`
	Platform    fields.Int          `json:"platform" groups:"basic"`
	Direction   constants.Direction `json:"direction" groups:"basic"`
	Length      fields.Int          `json:"length" groups:"basic"`
	Color       constants.Color     `json:"color"`
	HexColor    constants.Color     `json:"hexcolor" groups:"basic"`
	BikeFlag    fields.Flag         `json:"bikeflag"`
	Delay       fields.Int          `json:"delay" groups:"basic"`
	CancelFlag  fields.Flag         `json:"cancelflag" groups:"basic"`
	DynamicFlag fields.Flag         `json:"dynamicflag"`
}

// DelaySeconds is the reported delay, which the API gives in seconds.
func (e Estimate) DelaySeconds() int {
	return int(e.Delay)
}

// ETD groups the estimates for one destination. Destination is the name on
// the train and doesn't always match the station name (e.g. "Warm Springs").
type ETD struct {
	Destination  string                `json:"destination" groups:"basic"`
	Abbreviation constants.Station     `json:"abbreviation" groups:"basic"`
	Limited      fields.Flag           `json:"limited"`
	Estimate     fields.List[Estimate] `json:"estimate" groups:"basic"`
}

type Station struct {
	Name string            `json:"name" groups:"basic"`
	Abbr constants.Station `json:"abbr" groups:"basic"`
	ETD  fields.List[ETD]  `json:"etd" groups:"basic"`
}

type Response struct {
	Date    datetime.Date        `json:"date" groups:"basic"`
	Time    datetime.ZonedTime   `json:"time" groups:"basic"`
	Station fields.List[Station] `json:"station" groups:"basic"`
	Message bart.Message         `json:"message"`
}

// Options select the stations to report on. Either All is set, or Station
// with at most one of Direction and Platform.
type Options struct {
	All       bool
	Station   constants.Station   `validate:"required_without=All,excluded_with=All,station"`
	Direction constants.Direction `validate:"omitempty,oneof=n s,excluded_with=All Platform"`
	Platform  int                 `validate:"omitempty,min=1,max=4,excluded_with=All Direction"`
}

func AllStations() Options {
	return Options{All: true}
}

func ForStation(station constants.Station) Options {
	return Options{Station: station}
}

func (o Options) WithDirection(direction constants.Direction) Options {
	o.Direction = direction
	return o
}

func (o Options) WithPlatform(platform int) Options {
	o.Platform = platform
	return o
}

func (o Options) Validate() error {
	return bart.Validate(o)
}

func (o Options) params() (url.Values, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.All {
		return url.Values{"orig": {allStations}}, nil
	}

	params := url.Values{"orig": {o.Station.Abbr()}}
	if o.Direction != "" {
		params.Set("dir", o.Direction.Code())
	}
	if o.Platform != 0 {
		params.Set("plat", strconv.Itoa(o.Platform))
	}

	return params, nil
}

func URL(c *bart.Client, options Options) (string, error) {
	params, err := options.params()
	if err != nil {
		return "", err
	}

	return c.URL(Endpoint, params), nil
}

func Get(ctx context.Context, c *bart.Client, options Options) (*Response, error) {
	params, err := options.params()
	if err != nil {
		return nil, err
	}

	return bart.Fetch[Response](ctx, c, Endpoint, params)
}

// ForStations requests the estimates of several stations concurrently and
// merges them into one response, stations in the order given.
func ForStations(ctx context.Context, c *bart.Client, stations ...constants.Station) (*Response, error) {
	responses, err := bart.FanOut(ctx, stations, func(ctx context.Context, station constants.Station) (*Response, error) {
		return Get(ctx, c, ForStation(station))
	})
	if err != nil {
		return nil, err
	}

	return Merge(responses...), nil
}

// Merge concatenates the stations of several responses. The date, time and
// message are taken from the first one.
func Merge(responses ...*Response) *Response {
	merged := &Response{}

	for i, response := range responses {
		if i == 0 {
			merged.Date = response.Date
			merged.Time = response.Time
			merged.Message = response.Message
		}

		merged.Station = append(merged.Station, response.Station...)
	}

	return merged
}
