package aggregator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/disaster-alert-service/internal/aggregator"
	"github.com/couchcryptid/disaster-alert-service/internal/domain"
	"github.com/couchcryptid/disaster-alert-service/internal/observability"
)

// --- mocks ---

type mockProvider struct {
	name   string
	alerts []domain.Alert
	err    error
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Fetch(_ context.Context, _ *domain.Point) ([]domain.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.alerts, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAggregator(providers ...aggregator.Provider) *aggregator.Aggregator {
	return aggregator.New(discardLogger(), observability.NewMetricsForTesting(), providers...)
}

func alertAt(id string, severity domain.Severity, lat, lon float64) domain.Alert {
	return domain.Alert{
		ID:       id,
		Severity: severity,
		Location: domain.Location{Latitude: lat, Longitude: lon},
	}
}

// --- tests ---

func TestGetAllAlerts_MergesAndRanks(t *testing.T) {
	satellite := &mockProvider{name: "eonet", alerts: []domain.Alert{
		alertAt("e1", domain.SeverityMedium, 10.1, 76.1),
		alertAt("e2", domain.SeverityCritical, 11.0, 76.5),
	}}
	seismic := &mockProvider{name: "usgs", alerts: []domain.Alert{
		alertAt("u1", domain.SeverityHigh, 10.5, 76.2),
	}}

	agg := newAggregator(satellite, seismic)
	observer := &domain.Point{Lat: 10, Lon: 76}

	alerts := agg.GetAllAlerts(context.Background(), observer, 500)

	require.Len(t, alerts, 3)
	assert.Equal(t, "e2", alerts[0].ID)
	assert.Equal(t, "u1", alerts[1].ID)
	assert.Equal(t, "e1", alerts[2].ID)
	for _, a := range alerts {
		assert.Positive(t, a.Distance)
	}
}

func TestGetAllAlerts_ProviderFailureIsIsolated(t *testing.T) {
	satellite := &mockProvider{name: "eonet", alerts: []domain.Alert{
		alertAt("e1", domain.SeverityHigh, 10.1, 76.1),
		alertAt("e2", domain.SeverityLow, 10.2, 76.2),
	}}
	seismic := &mockProvider{name: "usgs", err: errors.New("connection refused")}

	agg := newAggregator(satellite, seismic)

	alerts := agg.GetAllAlerts(context.Background(), &domain.Point{Lat: 10, Lon: 76}, 500)

	require.Len(t, alerts, 2)
	assert.Equal(t, "e1", alerts[0].ID)
	assert.Equal(t, "e2", alerts[1].ID)
}

func TestGetAllAlerts_AllProvidersFailing(t *testing.T) {
	agg := newAggregator(
		&mockProvider{name: "eonet", err: errors.New("timeout")},
		&mockProvider{name: "usgs", err: errors.New("bad gateway")},
	)

	alerts := agg.GetAllAlerts(context.Background(), nil, 500)

	assert.Empty(t, alerts)
}

func TestGetAllAlerts_RadiusFiltering(t *testing.T) {
	// ~111 km and ~555 km north of the observer.
	agg := newAggregator(&mockProvider{name: "eonet", alerts: []domain.Alert{
		alertAt("near", domain.SeverityLow, 1, 0),
		alertAt("far", domain.SeverityCritical, 5, 0),
	}})

	alerts := agg.GetAllAlerts(context.Background(), &domain.Point{}, 200)

	require.Len(t, alerts, 1)
	assert.Equal(t, "near", alerts[0].ID)
}

func TestGetAllAlerts_NoObserver(t *testing.T) {
	agg := newAggregator(&mockProvider{name: "eonet", alerts: []domain.Alert{
		alertAt("a", domain.SeverityLow, 80, 170),
	}})

	alerts := agg.GetAllAlerts(context.Background(), nil, 200)

	// Without an observer nothing is filtered and no distance is set.
	require.Len(t, alerts, 1)
	assert.Zero(t, alerts[0].Distance)
}

func TestGetAlertsForRegion(t *testing.T) {
	agg := newAggregator(&mockProvider{name: "eonet", alerts: []domain.Alert{
		{ID: "named", Title: "Flood warning for Kerala", Severity: domain.SeverityHigh,
			Location: domain.Location{Latitude: 8.5, Longitude: 76.9}},
		{ID: "unrelated", Title: "Dust storm", Severity: domain.SeverityLow,
			Location: domain.Location{Latitude: 27.0, Longitude: 70.0}},
	}})
	observer := &domain.Point{Lat: 12.97, Lon: 77.59} // Bengaluru

	alerts := agg.GetAlertsForRegion(context.Background(), "Kerala", "Kochi", observer, 5000)

	require.Len(t, alerts, 1)
	assert.Equal(t, "named", alerts[0].ID)
}

func TestCheckReadiness(t *testing.T) {
	assert.Error(t, newAggregator().CheckReadiness(context.Background()))
	assert.NoError(t, newAggregator(&mockProvider{name: "eonet"}).CheckReadiness(context.Background()))
}
