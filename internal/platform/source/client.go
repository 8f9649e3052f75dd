package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// StatusError reports a non-2xx response from an upstream document host.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d fetching %s", e.Code, e.URL)
}

// Client fetches raw upstream documents over HTTP GET. It owns a politeness
// rate limiter and a request timeout; it never retries, a failed fetch is
// the caller's problem.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	metrics    *Metrics
}

// NewClient builds a client limited to rps requests per second.
func NewClient(userAgent string, timeout time.Duration, rps int, metrics *Metrics) *Client {
	if rps < 1 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		metrics:    metrics,
	}
}

// GetJSON fetches url and decodes the response body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

// GetText fetches url and returns the response body as text.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveFetchDuration(time.Since(start))
	if err != nil {
		c.metrics.IncFetch("error")
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		c.metrics.IncFetch("error")
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	c.metrics.IncFetch("success")
	return resp.Body, nil
}
