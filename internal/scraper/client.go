package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// Timeout bounds the outbound fetch well under the Lambda invocation
	// deadline, leaving headroom for parsing after a slow page.
	Timeout = 10 * time.Second

	// UserAgent mimics a desktop browser; ESPN serves a reduced page to
	// unidentified clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	retryInterval = 500 * time.Millisecond
	maxRetries    = 1
)

// FetchError describes a failed page fetch. StatusCode is zero when the
// failure happened before a response arrived.
type FetchError struct {
	Reason     string
	StatusCode int
	Detail     string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed (%s): status %d %s", e.Reason, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("fetch failed (%s): %s", e.Reason, e.Detail)
}

// Client fetches schedule pages over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a Client with the default timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchPage performs a GET against url and returns the page body. One retry
// is attempted on transient network errors and 5xx responses; 4xx responses
// are definitive and fail immediately.
func (c *Client) FetchPage(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		b, err := c.fetchOnce(ctx, url)
		if err != nil {
			var fetchErr *FetchError
			if errors.As(err, &fetchErr) && fetchErr.StatusCode >= 400 && fetchErr.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// fetchOnce issues a single GET with browser-like headers.
func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Reason: "bad_request", Detail: err.Error()}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: "network", Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Reason:     "status",
			StatusCode: resp.StatusCode,
			Detail:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Reason: "read", Detail: err.Error()}
	}
	if len(body) == 0 {
		return nil, &FetchError{Reason: "empty_body", Detail: "response body was empty"}
	}
	return body, nil
}
