package backend

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client talks to the course backend's REST API. Every authenticated call
// takes the caller's bearer token; the client stores none.
type Client struct {
	http *resty.Client
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(baseURL string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	return &Client{http: http}
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// call executes the request and decodes the envelope. out, when non-nil,
// receives the whole response body.
func (c *Client) call(req *resty.Request, method, path string, out interface{}) error {
	op := method + " " + path
	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return &TransportError{Op: op, Err: errors.Wrapf(err, "unexpected response (status %d)", resp.StatusCode())}
	}
	if !env.Success {
		return &APIError{Op: op, Message: env.Message}
	}
	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &TransportError{Op: op, Err: errors.Wrap(err, "decode response")}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, token, path string, out interface{}) error {
	return c.call(c.request(ctx, token), resty.MethodGet, path, out)
}

func (c *Client) post(ctx context.Context, token, path string, body, out interface{}) error {
	req := c.request(ctx, token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return c.call(req, resty.MethodPost, path, out)
}

func (c *Client) delete(ctx context.Context, token, path string) error {
	return c.call(c.request(ctx, token), resty.MethodDelete, path, nil)
}
