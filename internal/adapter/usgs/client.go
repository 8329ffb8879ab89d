// Package usgs fetches seismic events from the USGS FDSN event query API and
// normalizes them into domain alerts.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

// Source is the provider literal stamped on every alert from this feed.
const Source = "usgs"

// DefaultBaseURL is the public USGS earthquake query endpoint.
const DefaultBaseURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// Client fetches earthquakes from the USGS seismic feed. The query region is
// fixed to the continental default box; the observer only matters later, at
// ranking time.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	minMagnitude float64
	lookbackDays int
	logger       *slog.Logger
}

// NewClient creates a USGS feed client filtering by minimum magnitude over a
// lookback window of the given number of days.
func NewClient(baseURL string, timeout time.Duration, minMagnitude float64, lookbackDays int, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		minMagnitude: minMagnitude,
		lookbackDays: lookbackDays,
		logger:       logger,
	}
}

// Name returns the provider literal.
func (c *Client) Name() string { return Source }

// Fetch retrieves earthquakes from today minus the lookback window to now,
// normalized to alerts. The observer is ignored; the bounding box is fixed.
func (c *Client) Fetch(ctx context.Context, _ *domain.Point) ([]domain.Alert, error) {
	box := domain.DefaultRegionBox
	start := domain.Now().AddDate(0, 0, -c.lookbackDays)

	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {start.UTC().Format("2006-01-02")},
		"minlatitude":  {formatCoord(box.MinLat)},
		"maxlatitude":  {formatCoord(box.MaxLat)},
		"minlongitude": {formatCoord(box.MinLon)},
		"maxlongitude": {formatCoord(box.MaxLon)},
		"minmagnitude": {strconv.FormatFloat(c.minMagnitude, 'f', -1, 64)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("usgs API error: status %d: %s", resp.StatusCode, body)
	}

	var feed response
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("fetched usgs earthquakes",
		"count", len(feed.Features),
		"starttime", params.Get("starttime"),
		"min_magnitude", c.minMagnitude,
	)

	alerts := make([]domain.Alert, 0, len(feed.Features))
	for _, f := range feed.Features {
		alerts = append(alerts, toAlert(f))
	}
	return alerts, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// USGS GeoJSON response types.

type response struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID         string `json:"id"`
	Properties struct {
		Title string  `json:"title"`
		Mag   float64 `json:"mag"`
		Time  int64   `json:"time"` // epoch milliseconds
		Place string  `json:"place"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
	} `json:"geometry"`
}
