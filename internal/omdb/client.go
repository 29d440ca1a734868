package omdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"movieinfo/internal/movies"
	"movieinfo/internal/services"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// Looker resolves a single query into a raw record.
type Looker interface {
	Lookup(ctx context.Context, q movies.Query) (Record, error)
}

// Client performs OMDb title lookups.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ Looker = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds each request made by the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every lookup.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(ua)
	}
}

// New creates an OMDb client rooted at baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("omdb base url %q is not absolute", baseURL)
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QueryURL builds the lookup URL for title and year against the client's base.
func (c *Client) QueryURL(title, year string) string {
	return BuildQueryURL(c.baseURL, title, year)
}

// Lookup performs one GET for the query and decodes the JSON object body.
// The response body is always closed before returning.
func (c *Client) Lookup(ctx context.Context, q movies.Query) (Record, error) {
	endpoint := c.QueryURL(q.Title, q.Year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "omdb", "build request", "", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, classifyTransportError(err, latency)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		statusErr := &HTTPStatusError{URL: endpoint, StatusCode: resp.StatusCode}
		return nil, services.Wrap(services.ErrUpstreamStatus, "omdb", "lookup", fmt.Sprintf("latency=%v", latency), statusErr)
	}

	record, err := decodeRecord(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, services.Wrap(services.ErrInvalidResponse, "omdb", "decode", "", &DecodeError{URL: endpoint, Err: err})
	}
	return record, nil
}

func decodeRecord(r io.Reader) (Record, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !utf8.Valid(body) {
		return nil, errors.New("response body is not valid UTF-8")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var record Record
	if err := dec.Decode(&record); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("response is not a JSON object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return record, nil
}

func classifyTransportError(err error, latency time.Duration) error {
	detail := fmt.Sprintf("latency=%v", latency)
	if errors.Is(err, context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "omdb", "lookup", detail, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return services.Wrap(services.ErrTimeout, "omdb", "lookup", detail, err)
	}
	return services.Wrap(services.ErrTransient, "omdb", "lookup", detail, err)
}
