// Package schedule binds sched.aspx: the trip planner and fares.
package schedule

import (
	"context"
	"fmt"
	"net/url"

	"github.com/travigo/bart/pkg/apis/routes"
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/datetime"
	"github.com/travigo/bart/pkg/fields"
)

var (
	ArriveEndpoint = bart.Endpoint{Script: "sched", Command: "arrive"}
	DepartEndpoint = bart.Endpoint{Script: "sched", Command: "depart"}
	FareEndpoint   = bart.Endpoint{Script: "sched", Command: "fare"}
)

// FareAmount is the price of a trip for one fare class.
type FareAmount struct {
	Amount fields.Float       `json:"@amount" groups:"basic"`
	Class  constants.FareType `json:"@class" groups:"basic"`
	Name   constants.FareType `json:"@name"`
}

type Fares struct {
	Level string                  `json:"@level" groups:"basic"`
	Fare  fields.List[FareAmount] `json:"fare" groups:"basic"`
}

// Leg is one train ride of a trip. TrainHeadStation is the name on the train
// and doesn't always match a station name.
type Leg struct {
	Order            fields.Int        `json:"@order" groups:"basic"`
	Origin           constants.Station `json:"@origin" groups:"basic"`
	Destination      constants.Station `json:"@destination" groups:"basic"`
	OriginTime       datetime.Time     `json:"@origTimeMin" groups:"basic"`
	OriginDate       datetime.Date     `json:"@origTimeDate"`
	DestinationTime  datetime.Time     `json:"@destTimeMin" groups:"basic"`
	DestinationDate  datetime.Date     `json:"@destTimeDate"`
	Line             string            `json:"@line" groups:"basic"`
	BikeFlag         fields.Flag       `json:"@bikeflag"`
	TrainHeadStation string            `json:"@trainHeadStation" groups:"basic"`
	Load             fields.Int        `json:"@load"`
}

type Trip struct {
	Origin          constants.Station `json:"@origin" groups:"basic"`
	Destination     constants.Station `json:"@destination" groups:"basic"`
	OriginTime      datetime.Time     `json:"@origTimeMin" groups:"basic"`
	OriginDate      datetime.Date     `json:"@origTimeDate" groups:"basic"`
	DestinationTime datetime.Time     `json:"@destTimeMin" groups:"basic"`
	DestinationDate datetime.Date     `json:"@destTimeDate" groups:"basic"`
	TripTime        fields.Int        `json:"@tripTime" groups:"basic"`
	Fare            string            `json:"@fare" groups:"basic"`
	Clipper         string            `json:"@clipper"`
	Fares           Fares             `json:"fares"`
	Leg             fields.List[Leg]  `json:"leg" groups:"basic"`
}

// Transfers is the number of changes between trains.
func (t Trip) Transfers() int {
	if len(t.Leg) == 0 {
		return 0
	}

	return len(t.Leg) - 1
}

type Schedule struct {
	Date    datetime.Date `json:"date" groups:"basic"`
	Time    datetime.Time `json:"time" groups:"basic"`
	Before  fields.Int    `json:"before"`
	After   fields.Int    `json:"after"`
	Request struct {
		Trip fields.List[Trip] `json:"trip" groups:"basic"`
	} `json:"request" groups:"basic"`
}

type Response struct {
	Origin         constants.Station `json:"origin" groups:"basic"`
	Destination    constants.Station `json:"destination" groups:"basic"`
	ScheduleNumber fields.Int        `json:"sched_num"`
	Schedule       Schedule          `json:"schedule" groups:"basic"`
	Message        bart.Message      `json:"message"`
}

// Trips is shorthand for Schedule.Request.Trip.
func (r *Response) Trips() []Trip {
	return r.Schedule.Request.Trip
}

type FareResponse struct {
	Origin         constants.Station `json:"origin" groups:"basic"`
	Destination    constants.Station `json:"destination" groups:"basic"`
	ScheduleNumber fields.Int        `json:"sched_num"`
	Trip           struct {
		Fare fields.Float `json:"fare" groups:"basic"`
	} `json:"trip" groups:"basic"`
	Fares   Fares        `json:"fares" groups:"basic"`
	Message bart.Message `json:"message"`
}

func ArriveURL(c *bart.Client, options ArriveOptions) (string, error) {
	params, err := options.params()
	if err != nil {
		return "", err
	}

	return c.URL(ArriveEndpoint, params), nil
}

func DepartURL(c *bart.Client, options DepartOptions) (string, error) {
	params, err := options.params()
	if err != nil {
		return "", err
	}

	return c.URL(DepartEndpoint, params), nil
}

// Arrive plans trips arriving at the destination around the requested time.
func Arrive(ctx context.Context, c *bart.Client, options ArriveOptions) (*Response, error) {
	params, err := options.params()
	if err != nil {
		return nil, err
	}

	return bart.Fetch[Response](ctx, c, ArriveEndpoint, params)
}

// Depart plans trips leaving the origin around the requested time.
func Depart(ctx context.Context, c *bart.Client, options DepartOptions) (*Response, error) {
	params, err := options.params()
	if err != nil {
		return nil, err
	}

	return bart.Fetch[Response](ctx, c, DepartEndpoint, params)
}

func FareURL(c *bart.Client, origin, destination constants.Station, selector routes.Selector) (string, error) {
	params, err := fareParams(origin, destination, selector)
	if err != nil {
		return "", err
	}

	return c.URL(FareEndpoint, params), nil
}

func fareParams(origin, destination constants.Station, selector routes.Selector) (url.Values, error) {
	if !origin.Valid() || !destination.Valid() {
		return nil, fmt.Errorf("%w: unknown station in %q to %q", bart.ErrInvalidOptions, origin, destination)
	}

	params, err := selector.Values()
	if err != nil {
		return nil, err
	}
	params.Set("orig", origin.Abbr())
	params.Set("dest", destination.Abbr())

	return params, nil
}

// Fare returns the fares between two stations.
func Fare(ctx context.Context, c *bart.Client, origin, destination constants.Station, selector routes.Selector) (*FareResponse, error) {
	params, err := fareParams(origin, destination, selector)
	if err != nil {
		return nil, err
	}

	return bart.Fetch[FareResponse](ctx, c, FareEndpoint, params)
}
