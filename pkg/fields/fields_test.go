package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	tests := []struct {
		input    string
		expected Int
		err      bool
	}{
		{`"6"`, 6, false},
		{`" 12 "`, 12, false},
		{`42`, 42, false},
		{`"-1"`, -1, false},
		{`""`, 0, true},
		{`"six"`, 0, true},
		{`null`, 0, true},
		{`{"a":1}`, 0, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			var value Int
			err := json.Unmarshal([]byte(test.input), &value)

			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestFloat(t *testing.T) {
	var value Float
	require.NoError(t, json.Unmarshal([]byte(`"-122.271450"`), &value))
	assert.InDelta(t, -122.27145, float64(value), 0.000001)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"north"`), &value), ErrDecode)
}

func TestFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected Flag
		err      bool
	}{
		{`"0"`, false, false},
		{`"1"`, true, false},
		{`"2"`, true, false},
		{`1`, true, false},
		{`true`, true, false},
		{`false`, false, false},
		{`"yes"`, false, true},
		{`"-1"`, false, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			var value Flag
			err := json.Unmarshal([]byte(test.input), &value)

			if test.err {
				assert.ErrorIs(t, err, ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestCDATA(t *testing.T) {
	var value CDATA

	require.NoError(t, json.Unmarshal([]byte(`{"#cdata-section":"No delays reported."}`), &value))
	assert.Equal(t, "No delays reported.", value.String())

	require.NoError(t, json.Unmarshal([]byte(`"plain"`), &value))
	assert.Equal(t, CDATA("plain"), value)

	require.NoError(t, json.Unmarshal([]byte(`null`), &value))
	assert.Equal(t, CDATA(""), value)

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &value))
}

func TestList(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var many List[item]
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"a"},{"name":"b"}]`), &many))
	assert.Equal(t, List[item]{{Name: "a"}, {Name: "b"}}, many)

	var single List[item]
	require.NoError(t, json.Unmarshal([]byte(`{"name":"only"}`), &single))
	assert.Equal(t, List[item]{{Name: "only"}}, single)

	var strings List[string]
	require.NoError(t, json.Unmarshal([]byte(`"ROUTE 1"`), &strings))
	assert.Equal(t, List[string]{"ROUTE 1"}, strings)

	var empty List[string]
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Empty(t, empty)

	var broken List[Int]
	assert.Error(t, json.Unmarshal([]byte(`["1","x"]`), &broken))
}

func TestOptional(t *testing.T) {
	var value Optional[Int]

	require.NoError(t, json.Unmarshal([]byte(`"5"`), &value))
	number, ok := value.Get()
	assert.True(t, ok)
	assert.Equal(t, Int(5), number)

	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &value))
	assert.False(t, value.Valid)

	require.NoError(t, json.Unmarshal([]byte(`null`), &value))
	assert.False(t, value.Valid)

	var holder struct {
		Posted Optional[Int] `json:"posted"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &holder))
	assert.False(t, holder.Posted.Valid)

	out, err := json.Marshal(holder)
	require.NoError(t, err)
	assert.JSONEq(t, `{"posted":null}`, string(out))

	out, err = json.Marshal(Some(Int(3)))
	require.NoError(t, err)
	assert.Equal(t, "3", string(out))
}
