package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "vaccine-assistant/internal/common/errors"
)

// Client performs bounded JSON GETs and reports failures as StandardErrors.
type Client struct {
	httpClient *http.Client
	maxRetries int
}

func NewClient(timeout time.Duration, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
	}
}

// NewClientWithHTTP is used by tests that need a custom transport.
func NewClientWithHTTP(httpClient *http.Client, maxRetries int) *Client {
	return &Client{httpClient: httpClient, maxRetries: maxRetries}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

// GetJSON fetches url and decodes the body into out. Retryable failures are
// retried up to maxRetries times with exponential backoff, never beyond ctx.
func (c *Client) GetJSON(ctx context.Context, endpoint, url string, out interface{}) error {
	var lastErr *apperrors.StandardError

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return apperrors.NewRemoteTimeoutError(endpoint, ctx.Err())
			}
		}

		lastErr = c.getOnce(ctx, endpoint, url, out)
		if lastErr == nil {
			return nil
		}
		if !lastErr.Retryable || ctx.Err() != nil {
			break
		}
	}

	return lastErr
}

func (c *Client) getOnce(ctx context.Context, endpoint, url string, out interface{}) *apperrors.StandardError {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.NewRemoteUnavailableError(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return apperrors.NewRemoteTimeoutError(endpoint, err)
		}
		return apperrors.NewRemoteUnavailableError(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return apperrors.NewRemoteBadStatusError(endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(ctx, err) {
			return apperrors.NewRemoteTimeoutError(endpoint, err)
		}
		return apperrors.NewRemoteDecodeFailedError(endpoint, fmt.Errorf("decode: %w", err))
	}

	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
