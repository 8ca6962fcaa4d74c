package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cardkeeper/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// HeaderRequestID carries the per-request correlation id sent with every call.
const HeaderRequestID = "X-Request-ID"

// TokenSource supplies the current bearer token, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// UnauthorizedHandler is invoked once per 401 response, before the error is
// returned to the caller.
type UnauthorizedHandler func(ctx context.Context)

type Client struct {
	http           *resty.Client
	tokens         TokenSource
	logger         logging.Logger
	onUnauthorized UnauthorizedHandler
}

type Option func(*Client)

// WithTimeout bounds every request, connection included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// New creates a client for the backend rooted at baseURL
// (e.g. http://localhost:9090/api). tokens may be nil for anonymous use.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json"),
		tokens: tokens,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.OnBeforeRequest(c.attachCredentials)
	c.http.OnAfterResponse(c.inspectResponse)
	return c
}

func (c *Client) attachCredentials(_ *resty.Client, r *resty.Request) error {
	if c.tokens != nil {
		if token, ok := c.tokens.Token(r.Context()); ok {
			r.SetAuthToken(token)
		}
	}
	r.SetHeader(HeaderRequestID, uuid.NewString())
	return nil
}

func (c *Client) inspectResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	ctx := req.Context()

	c.logger.Debug(ctx, "api call",
		"method", req.Method,
		"url", req.URL,
		"status", resp.StatusCode(),
		"request_id", req.Header.Get(HeaderRequestID),
		"duration", resp.Time(),
	)

	if resp.StatusCode() == http.StatusUnauthorized {
		c.logger.Warn(ctx, "unauthorized response, ending session",
			"url", req.URL, "request_id", req.Header.Get(HeaderRequestID))
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return &Error{StatusCode: http.StatusUnauthorized, Message: messageFromBody(resp.Body())}
	}

	if resp.IsError() {
		return &Error{StatusCode: resp.StatusCode(), Message: messageFromBody(resp.Body())}
	}
	return nil
}

// request starts a call bound to ctx. Replies are decoded as JSON whatever
// Content-Type the backend sends.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		ForceContentType("application/json")
}

// execute sends r and normalises the outcome into nil, *Error, a decode
// error or an error wrapping ErrUnavailable.
func (c *Client) execute(r *resty.Request, method, path string) error {
	resp, err := r.Execute(method, path)
	if err == nil {
		if resp.IsError() {
			// Reached only if a hook was bypassed; keep the contract anyway.
			return &Error{StatusCode: resp.StatusCode(), Message: messageFromBody(resp.Body())}
		}
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if resp != nil && resp.RawResponse != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
}
