package routes

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bart/pkg/bart"
	"github.com/travigo/bart/pkg/bart/barttest"
	"github.com/travigo/bart/pkg/constants"
	"github.com/travigo/bart/pkg/output"
)

func TestSelector(t *testing.T) {
	client := bart.NewClient(bart.WithKey("KEY"))

	tests := []struct {
		name     string
		selector Selector
		expected string
	}{
		{
			name:     "current",
			selector: CurrentSchedule(),
			expected: "https://api.bart.gov/api/route.aspx?cmd=routes&json=y&key=KEY",
		},
		{
			name:     "schedule",
			selector: Schedule(88),
			expected: "https://api.bart.gov/api/route.aspx?cmd=routes&sched=88&json=y&key=KEY",
		},
		{
			name:     "today",
			selector: Today(),
			expected: "https://api.bart.gov/api/route.aspx?cmd=routes&date=today&json=y&key=KEY",
		},
		{
			name:     "date",
			selector: OnDate(time.Date(2026, time.December, 24, 18, 0, 0, 0, time.UTC)),
			expected: "https://api.bart.gov/api/route.aspx?cmd=routes&date=12%2F24%2F2026&json=y&key=KEY",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			url, err := ListURL(client, test.selector)
			require.NoError(t, err)
			assert.Equal(t, test.expected, url)
		})
	}
}

func TestInvalidSelector(t *testing.T) {
	_, err := Schedule(-1).Values()
	assert.ErrorIs(t, err, bart.ErrInvalidOptions)

	both := OnDate(time.Now())
	both.Schedule = 88
	_, err = both.Values()
	assert.ErrorIs(t, err, bart.ErrInvalidOptions)

	_, err = InfoURL(bart.NewClient(), 0, CurrentSchedule())
	assert.ErrorIs(t, err, bart.ErrInvalidOptions)
}

func TestInfoURL(t *testing.T) {
	url, err := InfoURL(bart.NewClient(bart.WithKey("KEY")), 3, Schedule(88))
	require.NoError(t, err)
	assert.Equal(t, "https://api.bart.gov/api/route.aspx?cmd=routeinfo&route=3&sched=88&json=y&key=KEY", url)
}

func TestList(t *testing.T) {
	server := barttest.NewServer(t, map[string]string{
		"routes": "testdata/routes.json",
	})

	response, err := List(context.Background(), server.Client(), Today())
	require.NoError(t, err)
	assert.Equal(t, "today", server.LastRequest().Get("date"))

	assert.EqualValues(t, 88, response.ScheduleNumber)
	routes := response.Routes.Route
	require.Len(t, routes, 4)

	assert.Equal(t, "Antioch to SFIA/Millbrae", routes[1].Name)
	assert.Equal(t, "ANTC-SFIA", routes[1].Abbr)
	assert.Equal(t, "ROUTE 1", routes[1].RouteID)
	assert.EqualValues(t, 1, routes[1].Number)
	assert.Equal(t, constants.ColorYellow, routes[1].Color)
	assert.Equal(t, constants.ColorBeige, routes[0].HexColor)

	// an empty colour name is purple
	assert.Equal(t, constants.ColorPurple, routes[3].Color)

	var buffer bytes.Buffer
	require.NoError(t, output.Write(&buffer, output.FormatCSV, response))
	assert.Equal(t, "number,route_id,abbr,name,color\n"+
		"19,ROUTE 19,OAKL-COLS,Oakland Airport to Coliseum,#d5cfa3\n"+
		"1,ROUTE 1,ANTC-SFIA,Antioch to SFIA/Millbrae,#ffff33\n"+
		"8,ROUTE 8,MLBR-RICH,Millbrae/Daly City to Richmond,#ff0000\n"+
		"12,ROUTE 12,DALY-BERY,Daly City to Berryessa/North San Jose,#c463c5\n", buffer.String())
}

func TestInfo(t *testing.T) {
	server := barttest.NewServer(t, map[string]string{
		"routeinfo?route=1":  "testdata/routeinfo_1.json",
		"routeinfo?route=19": "testdata/routeinfo_19.json",
	})
	client := server.Client()

	response, err := Info(context.Background(), client, 1, CurrentSchedule())
	require.NoError(t, err)

	route := response.Routes.Route
	assert.Equal(t, "ANTC-SFIA", route.Abbr)
	assert.Equal(t, constants.StationAntioch, route.Origin)
	assert.Equal(t, constants.StationMillbrae, route.Destination)
	assert.True(t, bool(route.Holidays))
	assert.EqualValues(t, 5, route.NumStations)
	assert.Equal(t, []constants.Station{
		constants.StationAntioch,
		constants.StationPittsburgCenter,
		constants.StationPittsburgBayPoint,
		constants.StationNorthConcordMartinez,
		constants.StationConcord,
	}, []constants.Station(route.Config.Station))

	rows, err := response.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, StopRow{Sequence: 2, Abbr: "pctr", Name: constants.StationPittsburgCenter.Name()}, rows.([]StopRow)[1])

	shuttle, err := Info(context.Background(), client, 19, CurrentSchedule())
	require.NoError(t, err)
	assert.Equal(t, []constants.Station{constants.StationOaklandIntlAirport}, []constants.Station(shuttle.Routes.Route.Config.Station))
	assert.False(t, bool(shuttle.Routes.Route.Holidays))
}
