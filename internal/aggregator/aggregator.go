// Package aggregator merges alerts from multiple disaster feeds into a single
// ranked, geo-filtered list. It is the top of the fetch → normalize → merge →
// rank → filter pipeline and is the only place provider failures are handled.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
	"github.com/couchcryptid/disaster-alert-service/internal/observability"
)

// Provider is a single external alert feed. Fetch returns alerts normalized
// to the common shape; the observer is a hint for geo-constrained queries and
// may be nil.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, observer *domain.Point) ([]domain.Alert, error)
}

// Aggregator fans out to every registered provider, absorbs per-provider
// failures, and ranks the merged result. It holds no state between calls;
// concurrent use is safe.
type Aggregator struct {
	providers []Provider
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates an Aggregator over the given providers.
func New(logger *slog.Logger, metrics *observability.Metrics, providers ...Provider) *Aggregator {
	return &Aggregator{
		providers: providers,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the aggregator has at least one provider to
// serve from. The aggregator itself is stateless, so readiness does not
// depend on any prior request.
func (a *Aggregator) CheckReadiness(_ context.Context) error {
	if len(a.providers) == 0 {
		return errors.New("no alert providers configured")
	}
	return nil
}

// GetAllAlerts fetches from every provider concurrently and returns the
// merged list ranked by severity and distance. A provider failure is logged,
// counted, and degrades that provider's contribution to nothing; it never
// fails the call. The result may therefore be empty both when there are no
// alerts and when every provider failed.
func (a *Aggregator) GetAllAlerts(ctx context.Context, observer *domain.Point, radiusKm float64) []domain.Alert {
	start := time.Now()

	// Per-provider result slots keep the merge order deterministic
	// regardless of which fetch finishes first.
	results := make([][]domain.Alert, len(a.providers))

	var g errgroup.Group
	for i, p := range a.providers {
		g.Go(func() error {
			results[i] = a.fetchOne(ctx, p, observer)
			return nil
		})
	}
	_ = g.Wait() // branches absorb their own errors

	var merged []domain.Alert
	for _, alerts := range results {
		merged = append(merged, alerts...)
	}

	ranked := domain.Rank(merged, observer, radiusKm)

	a.metrics.Aggregations.Inc()
	a.metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	a.metrics.AlertsReturned.Observe(float64(len(ranked)))
	return ranked
}

// GetAlertsForRegion narrows the ranked list to alerts relevant to a named
// state and city, by proximity or textual match. Same never-fails contract
// as GetAllAlerts.
func (a *Aggregator) GetAlertsForRegion(ctx context.Context, state, city string, observer *domain.Point, radiusKm float64) []domain.Alert {
	return domain.FilterRegion(a.GetAllAlerts(ctx, observer, radiusKm), state, city)
}

// fetchOne runs a single provider fetch, recording metrics and swallowing the
// error. Network failures, non-2xx responses, and malformed payloads all end
// here as an empty contribution.
func (a *Aggregator) fetchOne(ctx context.Context, p Provider, observer *domain.Point) []domain.Alert {
	start := time.Now()
	alerts, err := p.Fetch(ctx, observer)
	a.metrics.ProviderDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		a.metrics.ProviderRequests.WithLabelValues(p.Name(), "error").Inc()
		a.logger.Warn("provider fetch failed, continuing without it",
			"provider", p.Name(),
			"error", err,
		)
		return nil
	}

	a.metrics.ProviderRequests.WithLabelValues(p.Name(), "success").Inc()
	a.metrics.AlertsFetched.WithLabelValues(p.Name()).Add(float64(len(alerts)))
	return alerts
}
