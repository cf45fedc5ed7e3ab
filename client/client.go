package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// readRetries bounds the exponential backoff on idempotent reads
const readRetries = 2

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Client is the REST client for the upstream content service. Reads carry
// no auth; mutating calls take the bearer token per call, supplied by the
// caller from its mirrored token copy.
type Client struct {
	rest   *resty.Client
	logger Logger
}

// New returns a client bound to the content service base URL
func New(baseURL string) *Client {
	return &Client{
		rest:   resty.New().SetBaseURL(baseURL),
		logger: defLogger{},
	}
}

func (c *Client) WithLogger(logger Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	return c.rest.NewRequest().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString())
}

// get performs an idempotent read with bounded backoff on transport
// failures. Upstream rejections are terminal, never retried.
func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	op := func() error {
		req := c.newRequest(ctx).SetResult(out)
		if len(query) > 0 {
			req.SetQueryParams(query)
		}

		resp, err := req.Get(path)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return backoff.Permanent(c.upstreamError(resp))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), readRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return c.asNetworkError(err, path)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	req := c.newRequest(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("upstream %s %s transport failure: %v", method, path, err)
		return c.asNetworkError(err, path)
	}
	if resp.IsError() {
		return c.upstreamError(resp)
	}
	return nil
}

type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// upstreamError maps a non-2xx response onto the error taxonomy, keeping
// the upstream message verbatim where one exists.
func (c *Client) upstreamError(resp *resty.Response) error {
	msg := upstreamMessage(resp)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return errors.New(msg, errors.CategoryNotFound).WithCode(errors.CodeNotFound)
	case http.StatusConflict:
		return errors.New(msg, errors.CategoryConflict).WithCode(errors.CodeConflict)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.New(msg, errors.CategoryAuth).WithCode(errors.CodeUnauthorized)
	case http.StatusBadRequest:
		return errors.New(msg, errors.CategoryBadInput).WithCode(errors.CodeBadRequest)
	default:
		return errors.New(msg, errors.CategoryOperation).WithCode(errors.CodeInternal)
	}
}

func (c *Client) asNetworkError(err error, path string) error {
	var richErr *errors.Error
	if errors.As(err, &richErr) {
		return richErr
	}
	return errors.Wrap(err, errors.CategoryOperation, fmt.Sprintf("content service unreachable: %s", path)).
		WithCode(errors.CodeInternal)
}

func upstreamMessage(resp *resty.Response) string {
	var body upstreamErrorBody
	if err := unmarshalBody(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("upstream rejected request: %s", resp.Status())
}

func unmarshalBody(body []byte, out any) error {
	if len(body) == 0 {
		return fmt.Errorf("empty body")
	}
	return json.Unmarshal(body, out)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] CLIENT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] CLIENT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] CLIENT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
