// Package bart is the HTTP core shared by the BART API bindings: it builds
// request URLs, performs the GET with optional retries and unwraps the
// {"root": ...} envelope of the JSON responses.
package bart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const (
	// PublicKey is the shared key BART publishes for anyone to use.
	PublicKey = "MW9S-E7SL-26DU-VV8V"

	DefaultBaseURL       = "https://api.bart.gov/api"
	DefaultUserAgent     = "travigo-bart/1.0"
	DefaultTimeout       = 15 * time.Second
	DefaultRetryInterval = 2 * time.Second

	redactedKey = "REDACTED"
)

// Endpoint is a script and command pair, e.g. etd.aspx?cmd=etd.
type Endpoint struct {
	Script  string
	Command string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s.aspx?cmd=%s", e.Script, e.Command)
}

type Client struct {
	key           string
	baseURL       string
	userAgent     string
	timeout       time.Duration
	retries       uint64
	retryInterval time.Duration
	httpClient    *http.Client
}

type Option func(*Client)

// WithKey sets the API key. An empty key keeps the public key.
func WithKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.key = key
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout is ignored when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetries sets how many times a failed request is retried. Only
// transport errors, 5xx and 429 responses are retried.
func WithRetries(retries uint64) Option {
	return func(c *Client) {
		c.retries = retries
	}
}

func WithRetryInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.retryInterval = interval
	}
}

func NewClient(options ...Option) *Client {
	c := &Client{
		key:           PublicKey,
		baseURL:       DefaultBaseURL,
		userAgent:     DefaultUserAgent,
		timeout:       DefaultTimeout,
		retryInterval: DefaultRetryInterval,
	}

	for _, option := range options {
		option(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// URL returns the full request URL for an endpoint.
func (c *Client) URL(endpoint Endpoint, params url.Values) string {
	return c.buildURL(endpoint, params, c.key)
}

func (c *Client) buildURL(endpoint Endpoint, params url.Values, key string) string {
	var builder strings.Builder

	builder.WriteString(c.baseURL)
	builder.WriteString("/")
	builder.WriteString(endpoint.Script)
	builder.WriteString(".aspx?cmd=")
	builder.WriteString(url.QueryEscape(endpoint.Command))

	if encoded := params.Encode(); encoded != "" {
		builder.WriteString("&")
		builder.WriteString(encoded)
	}

	builder.WriteString("&json=y&key=")
	builder.WriteString(url.QueryEscape(key))

	return builder.String()
}

// Fetch requests an endpoint and decodes the root element of the response
// into T.
func Fetch[T any](ctx context.Context, c *Client, endpoint Endpoint, params url.Values) (*T, error) {
	requestURL := c.URL(endpoint, params)
	logURL := c.buildURL(endpoint, params, redactedKey)

	body, err := backoff.RetryNotifyWithData(
		func() ([]byte, error) {
			return c.get(ctx, endpoint, requestURL, logURL)
		},
		c.backOff(ctx),
		func(err error, d time.Duration) {
			log.Warn().Err(err).Str("endpoint", endpoint.String()).Msgf("Retrying in %s", d)
		},
	)
	if err != nil {
		return nil, err
	}

	return decode[T](endpoint, body)
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = c.retryInterval
	exponential.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exponential, c.retries), ctx)
}

func (c *Client) get(ctx context.Context, endpoint Endpoint, requestURL string, logURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	log.Debug().
		Str("endpoint", endpoint.String()).
		Str("url", logURL).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("BART API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		if statusErr.Temporary() {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	if err != nil {
		return nil, fmt.Errorf("%s failed to read body: %w", endpoint, err)
	}

	return body, nil
}

type envelope[T any] struct {
	Root T `json:"root"`
}

type messageOnly struct {
	Message json.RawMessage `json:"message"`
}

func decode[T any](endpoint Endpoint, body []byte) (*T, error) {
	var status envelope[messageOnly]
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
	}

	var message Message
	if len(status.Root.Message) > 0 && json.Unmarshal(status.Root.Message, &message) == nil && message.Error != nil {
		return nil, &APIError{
			Endpoint: endpoint,
			Text:     message.Error.Text.String(),
			Details:  message.Error.Details.String(),
		}
	}

	var response envelope[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
	}

	return &response.Root, nil
}
