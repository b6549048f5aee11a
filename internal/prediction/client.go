// Package prediction implements the client side of the risk
// segmentation API: one JSON POST per request, a decoded Result on 200,
// and a small typed error taxonomy for everything else.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"riskdash/internal/applicant"
)

// predictPath matches the route exposed by the prediction service.
const predictPath = "/predict_segment/"

// APIError is a non-200 response from the prediction service. Detail
// carries the service's own explanation (validation failures mostly).
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Detail)
}

// ConnectionError means the endpoint could not be reached at all.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to the prediction API at %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// errorBody is the shape FastAPI uses for error responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// Client calls the prediction service. The endpoint is fixed at
// construction; tests substitute an httptest server URL.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a prediction client for the given base URL
// (scheme://host:port, no trailing path).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the full prediction URL, used for error messages.
func (c *Client) Endpoint() string {
	return c.baseURL + predictPath
}

// Predict sends one applicant to the service and returns its
// classification. Exactly one attempt is made: no retry, no caching.
// Failures come back as *APIError, *ConnectionError, or a wrapped
// generic error for anything unexpected.
func (c *Client) Predict(ctx context.Context, in applicant.Input) (*Result, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ConnectionError{Endpoint: c.Endpoint(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := "Unknown API Error"
		if raw, err := io.ReadAll(resp.Body); err == nil {
			var eb errorBody
			if json.Unmarshal(raw, &eb) == nil && eb.Detail != "" {
				detail = eb.Detail
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
