package windapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_SampleWind_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "39.508", r.URL.Query().Get("lat"))
		assert.Equal(t, "-97.160", r.URL.Query().Get("lon"))
		assert.Equal(t, "2026-01-10", r.URL.Query().Get("date"))
		assert.Equal(t, "12", r.URL.Query().Get("hour"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(windResponse{U: 30, V: 40}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	sample, err := c.SampleWind(context.Background(), domain.Geo{Lat: 39.508, Lon: -97.16}, "2026-01-10", 12)
	require.NoError(t, err)

	// |(30,40)| = 50 m/s = 97.192 kts
	assert.InDelta(t, 97.192, sample.SpeedKnots, 0.001)
}

func TestClient_SampleWind_ZeroPadsHour(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "06", r.URL.Query().Get("hour"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(windResponse{U: 1, V: 0}))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.SampleWind(context.Background(), domain.Geo{}, "2026-01-10", 6)
	require.NoError(t, err)
}

func TestClient_SampleWind_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream model unavailable"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.SampleWind(context.Background(), domain.Geo{Lat: 40, Lon: -70}, "2026-01-10", 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_SampleWind_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"u": "strong"`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 5*time.Second)
	_, err := c.SampleWind(context.Background(), domain.Geo{Lat: 40, Lon: -70}, "2026-01-10", 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_SampleWind_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, 50*time.Millisecond)
	_, err := c.SampleWind(context.Background(), domain.Geo{Lat: 40, Lon: -70}, "2026-01-10", 12)
	require.Error(t, err)
}

// The client satisfies the sampler contract the scorer's enrichment
// path depends on.
var _ domain.WindSampler = (*Client)(nil)
