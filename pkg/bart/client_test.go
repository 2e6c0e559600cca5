package bart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bart/pkg/constants"
)

type countResponse struct {
	Date       string  `json:"date"`
	TrainCount string  `json:"traincount"`
	Message    Message `json:"message"`
}

var countEndpoint = Endpoint{Script: "bsa", Command: "count"}

func TestURL(t *testing.T) {
	client := NewClient()
	assert.Equal(t,
		"https://api.bart.gov/api/bsa.aspx?cmd=count&json=y&key=MW9S-E7SL-26DU-VV8V",
		client.URL(countEndpoint, nil),
	)

	client = NewClient(WithKey("ABCD"), WithBaseURL("http://localhost:8080/api/"))
	assert.Equal(t,
		"http://localhost:8080/api/stn.aspx?cmd=stninfo&orig=embr&json=y&key=ABCD",
		client.URL(Endpoint{Script: "stn", Command: "stninfo"}, url.Values{"orig": {"embr"}}),
	)

	client = NewClient(WithKey(""))
	assert.Contains(t, client.URL(countEndpoint, nil), "key="+PublicKey)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bsa.aspx", r.URL.Path)
		assert.Equal(t, "count", r.URL.Query().Get("cmd"))
		assert.Equal(t, "y", r.URL.Query().Get("json"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Write([]byte(`{"?xml":{"@version":"1.0","@encoding":"utf-8"},"root":{"@id":"1","uri":{"#cdata-section":"http://api.bart.gov/api/bsa.aspx?cmd=count"},"date":"10/18/2026","time":"03:04:05 PM PDT","traincount":"46","message":""}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL+"/api"), WithUserAgent("test-agent"))

	response, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)
	require.NoError(t, err)
	assert.Equal(t, "10/18/2026", response.Date)
	assert.Equal(t, "46", response.TrainCount)
	assert.True(t, response.Message.IsEmpty())
}

func TestFetchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"?xml":{"@version":"1.0"},"root":{"message":{"error":{"text":"Invalid key","details":{"#cdata-section":"The api key was missing or invalid."}}}}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid key", apiErr.Text)
	assert.Equal(t, "The api key was missing or invalid.", apiErr.Details)
	assert.Equal(t, countEndpoint, apiErr.Endpoint)
}

func TestFetchDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<root>not json</root>`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFetchStatusError(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetries(3), WithRetryInterval(time.Millisecond))

	_, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.False(t, statusErr.Temporary())
	assert.EqualValues(t, 1, requests.Load())
}

func TestFetchRetries(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.Write([]byte(`{"root":{"date":"10/18/2026","traincount":"12","message":""}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetries(5), WithRetryInterval(time.Millisecond))

	response, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)
	require.NoError(t, err)
	assert.Equal(t, "12", response.TrainCount)
	assert.EqualValues(t, 3, requests.Load())
}

func TestFetchNoRetriesByDefault(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := Fetch[countResponse](context.Background(), client, countEndpoint, nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.True(t, statusErr.Temporary())
	assert.EqualValues(t, 1, requests.Load())
}

func TestMessage(t *testing.T) {
	var response struct {
		Message Message `json:"message"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"message":{"legend":"bikeflag: 1 = bikes allowed.","warning":{"#cdata-section":"Delays expected"}}}`), &response))
	assert.Equal(t, "bikeflag: 1 = bikes allowed.", response.Message.Legend.String())
	assert.Equal(t, "Delays expected", response.Message.Warning.String())
	assert.Nil(t, response.Message.Error)
	assert.False(t, response.Message.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"message":"No delays reported."}`), &response))
	assert.Equal(t, "No delays reported.", response.Message.Text)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"message":12}`), &response), ErrDecode)
}

func TestValidate(t *testing.T) {
	type options struct {
		Platform int `validate:"min=0,max=4"`
	}

	assert.NoError(t, Validate(options{Platform: 2}))
	assert.ErrorIs(t, Validate(options{Platform: 7}), ErrInvalidOptions)
}

func TestValidateStation(t *testing.T) {
	type options struct {
		Origin      constants.Station `validate:"required,station"`
		Destination constants.Station `validate:"station"`
	}

	assert.NoError(t, Validate(options{Origin: constants.StationMacArthur}))
	assert.NoError(t, Validate(options{Origin: constants.StationMacArthur, Destination: constants.StationSanFranciscoIntlAirport}))
	assert.ErrorIs(t, Validate(options{}), ErrInvalidOptions)
	assert.ErrorIs(t, Validate(options{Origin: "nowhere"}), ErrInvalidOptions)
	assert.ErrorIs(t, Validate(options{Origin: constants.StationMacArthur, Destination: "MCAR"}), ErrInvalidOptions)
}
