package osm

import (
	"carbon-logistics-service/internal/platform/metrics"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxErrorBody = 512

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// client holds what both OSM services share: a base URL, a User-Agent
// (required by the Nominatim usage policy) and an HTTP session.
type client struct {
	service   string
	baseURL   string
	userAgent string
	session   *http.Client
}

func (c *client) newRequest(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do executes req and returns the body of any response below 500.
// Callers decide what a 4xx body means; 5xx and transport failures are errors.
func (c *client) do(req *http.Request) (status int, body []byte, err error) {
	start := time.Now()
	defer func() {
		label := strconv.Itoa(status)
		if err != nil && status == 0 {
			label = errorLabel(err)
		}
		metrics.RecordExternalRequest(c.service, label, time.Since(start))
	}()

	resp, err := c.session.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 500 {
		return resp.StatusCode, nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	return resp.StatusCode, body, nil
}

func errorLabel(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	default:
		return "error"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
