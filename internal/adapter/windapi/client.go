// Package windapi implements domain.WindSampler against the external
// upper-air wind proxy: a read-only query by coordinate, date, and UTC
// hour returning the 300hPa wind vector components in m/s.
package windapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/observability"
)

const metersPerSecondToKnots = 1.94384

// Client queries the upper-air wind service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a wind service client. The timeout bounds the single
// sampling attempt; no retries are performed.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// SampleWind fetches the wind vector at a coordinate and converts it to a
// scalar speed in knots. Callers treat any error as "no sample available".
func (c *Client) SampleWind(ctx context.Context, at domain.Geo, date string, hourUTC int) (domain.WindSample, error) {
	params := url.Values{
		"lat":  {fmt.Sprintf("%.3f", at.Lat)},
		"lon":  {fmt.Sprintf("%.3f", at.Lon)},
		"date": {date},
		"hour": {fmt.Sprintf("%02d", hourUTC)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.WindSample{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WindAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.WindRequests.WithLabelValues("error").Inc()
		return domain.WindSample{}, fmt.Errorf("wind request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.WindRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return domain.WindSample{}, fmt.Errorf("wind API error: status %d: %s", resp.StatusCode, body)
	}

	var wind windResponse
	if err := json.NewDecoder(resp.Body).Decode(&wind); err != nil {
		c.metrics.WindRequests.WithLabelValues("error").Inc()
		return domain.WindSample{}, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.WindRequests.WithLabelValues("success").Inc()
	speedMS := math.Hypot(wind.U, wind.V)
	return domain.WindSample{SpeedKnots: speedMS * metersPerSecondToKnots}, nil
}

// windResponse is the wind service payload: two orthogonal velocity
// components in m/s.
type windResponse struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}
