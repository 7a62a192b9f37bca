// Package fetch retrieves HTML pages for the resolver. Transport failures
// never cross the boundary as errors: callers see an empty body and decide
// nothing was found.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/nekomori/animeseek/internal/logging"
)

const (
	// DefaultUserAgent identifies the client to upstream indexes.
	DefaultUserAgent = "animeseek/1.0"
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 15 * time.Second
	// maxBodySize caps how much HTML is read from one page.
	maxBodySize = 4 << 20
)

// Client fetches pages over HTTP.
type Client struct {
	http      *http.Client
	userAgent string
	log       *logging.Logger
}

// NewClient creates a fetch client. Zero timeout and empty userAgent fall
// back to the defaults; log may be nil.
func NewClient(timeout time.Duration, userAgent string, log *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
		log:       log,
	}
}

// Page returns the body of url, or "" on any transport error or non-2xx
// status.
func (c *Client) Page(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Warn("fetch", "bad request url", logging.F("url", url))
		return ""
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("fetch", "request failed", logging.F("url", url))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("fetch", "unexpected status",
			logging.F("url", url), logging.F("status", resp.StatusCode))
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.log.Warn("fetch", "read failed", logging.F("url", url))
		return ""
	}
	return string(body)
}
