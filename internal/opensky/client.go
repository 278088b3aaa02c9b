package opensky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatesFetcher fetches the current flight-state snapshot.
// This interface is implemented by *Client and can be used for testing.
type StatesFetcher interface {
	FetchStates(ctx context.Context) (Snapshot, error)
}

// Ensure Client implements StatesFetcher at compile time.
var _ StatesFetcher = (*Client)(nil)

const (
	// DefaultEndpoint is the public all-states endpoint.
	DefaultEndpoint = "https://opensky-network.org/api/states/all"
	// DefaultMaxFlights caps how many states one snapshot keeps.
	DefaultMaxFlights = 50

	defaultTimeout = 10 * time.Second
)

// Client talks to the OpenSky states endpoint.
type Client struct {
	endpoint   *url.URL
	http       *http.Client
	timeout    time.Duration
	maxFlights int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its own timeout wins
// over WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds a single request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxFlights sets the snapshot cap. Values <= 0 keep the default.
func WithMaxFlights(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxFlights = n
		}
	}
}

// NewClient builds a Client for endpoint. An empty endpoint uses DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:   u,
		timeout:    defaultTimeout,
		maxFlights: DefaultMaxFlights,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Endpoint returns the URL the client polls.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// FetchStates issues one GET against the endpoint and returns at most
// maxFlights records. A body without a states list yields an empty snapshot.
func (c *Client) FetchStates(ctx context.Context) (Snapshot, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	return decodeSnapshot(body, c.maxFlights)
}

func decodeSnapshot(body []byte, limit int) (Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		// Valid JSON that is not an object carries no states field.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Snapshot{}, nil
		}
		return nil, &MalformedResponseError{Err: err}
	}

	raw, ok := top["states"]
	if !ok {
		return Snapshot{}, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Snapshot{}, nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	snap := make(Snapshot, len(entries))
	for i, entry := range entries {
		_ = snap[i].UnmarshalJSON(entry)
	}
	return snap, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
