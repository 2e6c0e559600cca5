// Package routes binds route.aspx: the route list and the stations served by
// each route.
package routes

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/fields"
)

var (
	ListEndpoint = bart.Endpoint{Script: "route", Command: "routes"}
	InfoEndpoint = bart.Endpoint{Script: "route", Command: "routeinfo"}
)

type Route struct {
	Name     string          `json:"name" groups:"basic"`
	Abbr     string          `json:"abbr" groups:"basic"`
	RouteID  string          `json:"routeID" groups:"basic"`
	Number   fields.Int      `json:"number" groups:"basic"`
	HexColor constants.Color `json:"hexcolor" groups:"basic"`
	Color    constants.Color `json:"color"`
}

type ListResponse struct {
	ScheduleNumber fields.Int `json:"sched_num" groups:"basic"`
	Routes         struct {
		Route fields.List[Route] `json:"route" groups:"basic"`
	} `json:"routes" groups:"basic"`
	Message bart.Message `json:"message"`
}

type Config struct {
	Station fields.List[constants.Station] `json:"station" groups:"basic"`
}

// RouteInfo is a route with the ordered list of stations it serves.
type RouteInfo struct {
	Route

	Origin      constants.Station `json:"origin" groups:"basic"`
	Destination constants.Station `json:"destination" groups:"basic"`
	Holidays    fields.Flag       `json:"holidays"`
	NumStations fields.Int        `json:"num_stns" groups:"basic"`
	Config      Config            `json:"config" groups:"basic"`
}

type InfoResponse struct {
	ScheduleNumber fields.Int `json:"sched_num" groups:"basic"`
	Routes         struct {
		Route RouteInfo `json:"route" groups:"basic"`
	} `json:"routes" groups:"basic"`
	Message bart.Message `json:"message"`
}

func ListURL(c *bart.Client, selector Selector) (string, error) {
	params, err := selector.Values()
	if err != nil {
		return "", err
	}

	return c.URL(ListEndpoint, params), nil
}

func InfoURL(c *bart.Client, route int, selector Selector) (string, error) {
	params, err := infoParams(route, selector)
	if err != nil {
		return "", err
	}

	return c.URL(InfoEndpoint, params), nil
}

func infoParams(route int, selector Selector) (url.Values, error) {
	if route <= 0 {
		return nil, fmt.Errorf("%w: route number must be positive, got %d", bart.ErrInvalidOptions, route)
	}

	params, err := selector.Values()
	if err != nil {
		return nil, err
	}
	params.Set("route", strconv.Itoa(route))

	return params, nil
}

func List(ctx context.Context, c *bart.Client, selector Selector) (*ListResponse, error) {
	params, err := selector.Values()
	if err != nil {
		return nil, err
	}

	return bart.Fetch[ListResponse](ctx, c, ListEndpoint, params)
}

func Info(ctx context.Context, c *bart.Client, route int, selector Selector) (*InfoResponse, error) {
	params, err := infoParams(route, selector)
	if err != nil {
		return nil, err
	}

	return bart.Fetch[InfoResponse](ctx, c, InfoEndpoint, params)
}
