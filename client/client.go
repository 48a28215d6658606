// Package client is a Go client for the reviews HTTP API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"reviews/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("reviews api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// Create submits text and returns the stored review with its sentiment.
func (c *Client) Create(ctx context.Context, text string) (*models.Review, error) {
	var review models.Review
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&review).
		SetError(&errorBody{}).
		Post("/reviews")
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &review, nil
}

// List returns all reviews, or only those with the given sentiment when it
// is non-empty.
func (c *Client) List(ctx context.Context, sentiment string) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	req := c.http.R().
		SetContext(ctx).
		SetResult(&reviews).
		SetError(&errorBody{})
	if sentiment != "" {
		req.SetQueryParam("sentiment", sentiment)
	}

	resp, err := req.Get("/reviews")
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return reviews, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func apiError(resp *resty.Response) error {
	msg := resp.Status()
	if body, ok := resp.Error().(*errorBody); ok && body.Error != "" {
		msg = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
