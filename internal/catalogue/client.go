package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vaccine-assistant/internal/common/config"
	apperrors "vaccine-assistant/internal/common/errors"
	apphttp "vaccine-assistant/internal/common/http"
	"vaccine-assistant/internal/common/metrics"
)

const (
	EndpointVaccines      = "vaccines"
	EndpointSchedules     = "schedules"
	EndpointHealthCenters = "health-centers"
)

// Client queries the external vaccine catalogue API.
type Client struct {
	base    *url.URL
	http    *apphttp.Client
	timeout time.Duration
}

// New builds a client from configuration. The configured timeout bounds a
// whole call, retries included.
func New(cfg config.CatalogueConfig) (*Client, error) {
	timeout := config.GetDuration(cfg.Timeout)
	c, err := NewWithHTTP(cfg.BaseURL, apphttp.NewClient(timeout, cfg.MaxRetries))
	if err != nil {
		return nil, err
	}
	c.timeout = timeout
	return c, nil
}

func NewWithHTTP(baseURL string, httpClient *apphttp.Client) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("catalogue base url is empty")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("catalogue base url must be absolute: %q", baseURL)
	}
	return &Client{base: base, http: httpClient}, nil
}

// SearchVaccines calls GET {base}vaccines/?q={query}.
func (c *Client) SearchVaccines(ctx context.Context, query string) ([]Vaccine, error) {
	var out []Vaccine
	err := c.list(ctx, EndpointVaccines, url.Values{"q": {query}}, &out)
	return out, err
}

// SchedulesByAge calls GET {base}schedules/?age={age}.
func (c *Client) SchedulesByAge(ctx context.Context, age string) ([]Schedule, error) {
	var out []Schedule
	err := c.list(ctx, EndpointSchedules, url.Values{"age": {age}}, &out)
	return out, err
}

// HealthCenters calls GET {base}health-centers/.
func (c *Client) HealthCenters(ctx context.Context) ([]HealthCenter, error) {
	var out []HealthCenter
	err := c.list(ctx, EndpointHealthCenters, nil, &out)
	return out, err
}

func (c *Client) endpointURL(endpoint string, query url.Values) string {
	u := c.base.ResolveReference(&url.URL{Path: endpoint + "/"})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) list(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var raw json.RawMessage
	if err := c.http.GetJSON(ctx, endpoint, c.endpointURL(endpoint, query), &raw); err != nil {
		metrics.CatalogueRequests.WithLabelValues(endpoint, string(apperrors.CodeOf(err))).Inc()
		return err
	}
	if err := decodeResults(raw, out); err != nil {
		decodeErr := apperrors.NewRemoteDecodeFailedError(endpoint, err)
		metrics.CatalogueRequests.WithLabelValues(endpoint, string(decodeErr.Code)).Inc()
		return decodeErr
	}
	metrics.CatalogueRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
