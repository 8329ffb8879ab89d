package eonet

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

const eventsPayload = `{
  "events": [
    {
      "id": "EONET_6514",
      "title": "Wildfire - Wayanad, India",
      "description": "Forest fire detected by satellite.",
      "categories": [{"title": "Wildfires"}],
      "sources": [{"id": "GDACS"}, {"id": "InciWeb"}],
      "geometry": [{"coordinates": [76.08, 11.68], "date": "2026-08-28T09:30:00Z"}]
    },
    {
      "id": "EONET_6520",
      "title": "Cyclone Remal",
      "categories": [{"title": "Tropical Cyclones"}],
      "geometry": [{"coordinates": [89.2, 21.5], "date": "2026-08-30T00:00:00Z"}]
    }
  ]
}`

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, 30, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "open", r.URL.Query().Get("status"))
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		// Observer at (10, 76) gives a ±5° box: lonMin,latMin,lonMax,latMax.
		assert.Equal(t, "71,5,81,15", r.URL.Query().Get("bbox"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(eventsPayload))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	alerts, err := c.Fetch(context.Background(), &domain.Point{Lat: 10, Lon: 76})

	require.NoError(t, err)
	require.Len(t, alerts, 2)

	fire := alerts[0]
	assert.Equal(t, "eonet-EONET_6514", fire.ID)
	assert.Equal(t, "Wildfire - Wayanad, India", fire.Title)
	assert.Equal(t, "Forest fire detected by satellite.", fire.Description)
	assert.Equal(t, domain.CategoryFire, fire.Category)
	assert.Equal(t, domain.SeverityMedium, fire.Severity)
	assert.Equal(t, 11.68, fire.Location.Latitude)
	assert.Equal(t, 76.08, fire.Location.Longitude)
	assert.Equal(t, time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC), fire.StartTime)
	assert.Equal(t, Source, fire.Source)
	assert.Equal(t, []string{"GDACS", "InciWeb"}, fire.AffectedAreas)
	assert.Zero(t, fire.Distance)

	cyclone := alerts[1]
	assert.Equal(t, domain.CategoryCyclone, cyclone.Category)
	assert.Equal(t, domain.SeverityLow, cyclone.Severity)
}

func TestClient_Fetch_DefaultBoxWithoutObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "68,6,98,38", r.URL.Query().Get("bbox"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	alerts, err := testClient(srv.URL).Fetch(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestClient_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"events": [`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Fetch_LogsAtDebug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(eventsPayload))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewClient(srv.URL, 5*time.Second, 30, logger)

	_, err := c.Fetch(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "fetched eonet events")
	assert.Contains(t, buf.String(), "count=2")
}

func TestToAlert_SafeDefaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(now))
	defer domain.SetClock(nil)

	t.Run("empty event", func(t *testing.T) {
		alert := toAlert(event{ID: "EONET_1"})

		assert.Equal(t, "eonet-EONET_1", alert.ID)
		assert.Equal(t, domain.Category("Unknown"), alert.Category)
		assert.Equal(t, domain.SeverityLow, alert.Severity)
		assert.Zero(t, alert.Location.Latitude)
		assert.Zero(t, alert.Location.Longitude)
		assert.Equal(t, now, alert.StartTime)
		assert.Empty(t, alert.AffectedAreas)
	})

	t.Run("unmapped category passes through", func(t *testing.T) {
		alert := toAlert(event{ID: "x", Categories: []category{{Title: "Water Color"}}})

		assert.Equal(t, domain.Category("Water Color"), alert.Category)
		assert.Equal(t, domain.SeverityLow, alert.Severity)
	})

	t.Run("bad geometry date falls back to clock", func(t *testing.T) {
		alert := toAlert(event{ID: "x", Geometry: []geometry{{Coordinates: []float64{76, 10}, Date: "yesterday"}}})

		assert.Equal(t, now, alert.StartTime)
		assert.Equal(t, 10.0, alert.Location.Latitude)
	})

	t.Run("severity heuristic by provider category", func(t *testing.T) {
		tests := []struct {
			category string
			expected domain.Severity
		}{
			{"Earthquakes", domain.SeverityCritical},
			{"Volcanoes", domain.SeverityCritical},
			{"Severe Storms", domain.SeverityHigh},
			{"Floods", domain.SeverityHigh},
			{"Wildfires", domain.SeverityMedium},
			{"Landslides", domain.SeverityMedium},
			{"Drought", domain.SeverityLow},
		}
		for _, tt := range tests {
			alert := toAlert(event{ID: "x", Categories: []category{{Title: tt.category}}})
			assert.Equal(t, tt.expected, alert.Severity, tt.category)
		}
	})
}
