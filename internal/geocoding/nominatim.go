// Package geocoding resolves free-text postal addresses to WGS-84 coordinates
// through a Nominatim-compatible lookup service.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/baeza-marine/booking-service/internal/domain/model"
	"github.com/baeza-marine/booking-service/internal/metrics"
)

// ErrNoResult is returned when the lookup service has no match for the query.
var ErrNoResult = errors.New("geocoding: no result for query")

// Geocoder resolves a free-text address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (model.Coordinate, error)
}

// Config holds Nominatim client configuration.
type Config struct {
	// BaseURL is the search endpoint base, e.g. "https://nominatim.openstreetmap.org".
	BaseURL string
	// UserAgent identifies this client to the upstream service. Nominatim's
	// usage policy requires an identifying label; requests without one are
	// rejected.
	UserAgent string
	// Timeout bounds each lookup. The upstream is a public service with no
	// SLA, so a short timeout keeps the booking flow responsive.
	Timeout time.Duration
}

// DefaultConfig returns the production Nominatim configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://nominatim.openstreetmap.org",
		UserAgent: "Baeza Marine Booking Service",
		Timeout:   5 * time.Second,
	}
}

// Client is a Nominatim HTTP geocoder.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Nominatim client. A nil httpClient uses a default
// client bounded by cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// nominatimResult is one candidate match. Nominatim serializes coordinates
// as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode looks up the single best match for query.
// Returns ErrNoResult when the service has no match; other errors indicate
// transport or payload failures.
func (c *Client) Geocode(ctx context.Context, query string) (model.Coordinate, error) {
	start := time.Now()
	coord, err := c.geocode(ctx, query)
	switch {
	case err == nil:
		metrics.RecordGeocodingRequest("hit", time.Since(start))
	case errors.Is(err, ErrNoResult):
		metrics.RecordGeocodingRequest("no_result", time.Since(start))
	default:
		metrics.RecordGeocodingRequest("error", time.Since(start))
	}
	return coord, err
}

func (c *Client) geocode(ctx context.Context, query string) (model.Coordinate, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	reqURL := c.cfg.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Coordinate{}, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return model.Coordinate{}, fmt.Errorf("geocoding: search endpoint %d: %s", resp.StatusCode, string(b))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return model.Coordinate{}, fmt.Errorf("geocoding: decode response: %w", err)
	}
	if len(results) == 0 {
		return model.Coordinate{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("geocoding: parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("geocoding: parse lon %q: %w", results[0].Lon, err)
	}

	return model.Coordinate{Lat: lat, Lon: lon}, nil
}
