package constants

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStation(t *testing.T) {
	tests := []struct {
		input    string
		expected Station
	}{
		{"12th", StationOaklandCityCenter12thSt},
		{"12TH", StationOaklandCityCenter12thSt},
		{"Embr", StationEmbarcadero},
		{"Embarcadero (SF)", StationEmbarcadero},
		{"Oakland Int'l Airport", StationOaklandIntlAirport},
		{"bery", StationBerryessa},
		{"Milpitas", StationMilpitas},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			station, err := ParseStation(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, station)
		})
	}

	_, err := ParseStation("embarcadero (sf)")
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = ParseStation("xxxx")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestStationTable(t *testing.T) {
	all := AllStations()
	assert.Len(t, all, 50)

	seen := map[string]bool{}
	for _, station := range all {
		assert.True(t, station.Valid())
		assert.Equal(t, string(station), station.Abbr())
		assert.NotEmpty(t, station.Name())
		assert.False(t, seen[station.Name()], "duplicate name %s", station.Name())
		seen[station.Name()] = true

		fromName, err := StationFromName(station.Name())
		require.NoError(t, err)
		assert.Equal(t, station, fromName)
	}

	assert.False(t, Station("nope").Valid())
}

func TestStationJSON(t *testing.T) {
	var decoded struct {
		Abbr Station `json:"abbr"`
		Name Station `json:"name"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"abbr":"POWL","name":"Powell St. (SF)"}`), &decoded))
	assert.Equal(t, StationPowellSt, decoded.Abbr)
	assert.Equal(t, StationPowellSt, decoded.Name)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"abbr":"powl","name":"powl"}`, string(encoded))

	assert.Error(t, json.Unmarshal([]byte(`{"abbr":"Nowhere"}`), &decoded))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
	}{
		{"#ffff33", ColorYellow},
		{"#FF9933", ColorOrange},
		{"GREEN", ColorGreen},
		{"RED", ColorRed},
		{"#0099cc", ColorBlue},
		{"PURPLE", ColorPurple},
		{"", ColorPurple},
		{"BEIGE", ColorBeige},
		{"#ffffff", ColorWhite},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			color, err := ParseColor(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, color)
		})
	}

	_, err := ParseColor("MAGENTA")
	assert.ErrorIs(t, err, ErrUnknownCode)

	assert.Equal(t, "#c463c5", ColorPurple.Hex())
	assert.Equal(t, "YELLOW", ColorYellow.Name())

	encoded, err := json.Marshal(ColorBlue)
	require.NoError(t, err)
	assert.Equal(t, `"#0099cc"`, string(encoded))
}

func TestParseDirection(t *testing.T) {
	for input, expected := range map[string]Direction{
		"n":     DirectionNorthbound,
		"s":     DirectionSouthbound,
		"North": DirectionNorthbound,
		"South": DirectionSouthbound,
	} {
		direction, err := ParseDirection(input)
		require.NoError(t, err)
		assert.Equal(t, expected, direction)
	}

	_, err := ParseDirection("east")
	assert.ErrorIs(t, err, ErrUnknownCode)

	assert.Equal(t, "n", DirectionNorthbound.Code())
	assert.Equal(t, "South", DirectionSouthbound.Name())

	var decoded struct {
		Direction Direction `json:"direction"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"direction":"South"}`), &decoded))
	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"direction":"s"}`, string(encoded))
}

func TestParseFareType(t *testing.T) {
	for input, expected := range map[string]FareType{
		"clipper":                 FareTypeClipper,
		"cash":                    FareTypeCash,
		"rtcclipper":              FareTypeRTCClipper,
		"student":                 FareTypeStudent,
		"Clipper":                 FareTypeClipper,
		"BART Blue Ticket":        FareTypeCash,
		"Senior/Disabled Clipper": FareTypeRTCClipper,
		"Youth Clipper":           FareTypeStudent,
	} {
		fareType, err := ParseFareType(input)
		require.NoError(t, err)
		assert.Equal(t, expected, fareType)
	}

	_, err := ParseFareType("paper")
	assert.ErrorIs(t, err, ErrUnknownCode)

	assert.Equal(t, "Youth Clipper", FareTypeStudent.Name())
	assert.Equal(t, "rtcclipper", FareTypeRTCClipper.Code())
}
