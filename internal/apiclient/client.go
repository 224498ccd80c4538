// Package apiclient is the shared HTTP client for the remote inventory and
// sales API. Resource clients depend on the narrow Doer interface rather than
// on the HTTP stack.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// Doer performs a single API request. A JSON 2xx response body is decoded
// into out when out is non-nil.
type Doer interface {
	Do(ctx context.Context, req Request, out any) error
}

// Request describes one call against the API. Path is resolved against the
// client's base URL; a leading slash is optional.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg = fmt.Sprintf("%s - %s", msg, e.Body)
	}
	return msg
}

// Detail returns the "detail" message of a JSON error body, or the raw body
// when there is none.
func (e *StatusError) Detail() string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return e.Body
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// ErrNotJSON is returned when a successful response that should be decoded
// does not carry a JSON body.
var ErrNotJSON = errors.New("response is not JSON")

// maxErrorBody caps how much of an error response is kept in StatusError.
const maxErrorBody = 512

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())

	return &Client{http: rc, logger: logger}
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) Do(ctx context.Context, req Request, out any) error {
	path := "/" + strings.TrimLeft(req.Path, "/")
	reqID := RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	r := c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, reqID)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if out != nil {
		r.SetResult(out)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, path)
	if err != nil {
		c.logger.Warn("api request failed",
			zap.String("method", req.Method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}

	c.logger.Debug("api request",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.String("request_id", reqID),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if code := resp.StatusCode(); code < 200 || code > 299 {
		body := resp.String()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{
			Method:     req.Method,
			Path:       path,
			StatusCode: code,
			Body:       strings.TrimSpace(body),
		}
	}

	if out != nil && resp.StatusCode() != http.StatusNoContent {
		if ct := resp.Header().Get("Content-Type"); !strings.Contains(ct, "json") {
			return fmt.Errorf("%s %s: %w (content type %q)", req.Method, path, ErrNotJSON, ct)
		}
	}
	return nil
}
