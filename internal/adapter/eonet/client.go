// Package eonet fetches natural-event data from the NASA EONET v3 API and
// normalizes it into domain alerts.
package eonet

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
const Source = "eonet"

// observerBoxDegrees is the half-width of the bounding box placed around an
// observer point when one is supplied.
const observerBoxDegrees = 5.0

// DefaultBaseURL is the public EONET v3 events endpoint.
const DefaultBaseURL = "https://eonet.gsfc.nasa.gov/api/v3/events"

// Client fetches open events from the EONET satellite event feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	days       int
	logger     *slog.Logger
}

// NewClient creates an EONET feed client. days limits events to the given
// lookback window; the timeout bounds each request end to end.
func NewClient(baseURL string, timeout time.Duration, days int, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		days:       days,
		logger:     logger,
	}
}

// Name returns the provider literal.
func (c *Client) Name() string { return Source }

// Fetch retrieves open events within ±5° of the observer, or within the fixed
// continental default box when no observer is given, normalized to alerts.
func (c *Client) Fetch(ctx context.Context, observer *domain.Point) ([]domain.Alert, error) {
	box := domain.DefaultRegionBox
	if observer != nil {
		box = domain.BoxAround(*observer, observerBoxDegrees)
	}

	params := url.Values{
		"bbox":   {fmt.Sprintf("%g,%g,%g,%g", box.MinLon, box.MinLat, box.MaxLon, box.MaxLat)},
		"status": {"open"},
		"days":   {strconv.Itoa(c.days)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("eonet request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("eonet API error: status %d: %s", resp.StatusCode, body)
	}

	var feed response
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("fetched eonet events",
		"count", len(feed.Events),
		"bbox", params.Get("bbox"),
		"days", c.days,
	)

	alerts := make([]domain.Alert, 0, len(feed.Events))
	for _, e := range feed.Events {
		alerts = append(alerts, toAlert(e))
	}
	return alerts, nil
}

// EONET API response types.

type response struct {
	Events []event `json:"events"`
}

type event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Categories  []category    `json:"categories"`
	Geometry    []geometry    `json:"geometry"`
	Sources     []eventSource `json:"sources"`
}

type category struct {
	Title string `json:"title"`
}

type geometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, ...]
	Date        string    `json:"date"`
}

type eventSource struct {
	ID string `json:"id"`
}
