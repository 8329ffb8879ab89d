// Package http exposes the alert aggregation API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

// AlertService serves ranked alert lists. Implemented by the aggregator.
type AlertService interface {
	GetAllAlerts(ctx context.Context, observer *domain.Point, radiusKm float64) []domain.Alert
	GetAlertsForRegion(ctx context.Context, state, city string, observer *domain.Point, radiusKm float64) []domain.Alert
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the alert API over HTTP.
type Server struct {
	httpServer      *http.Server
	alerts          AlertService
	defaultRadiusKm float64
	logger          *slog.Logger
}

// NewServer creates an HTTP server with the alert API, /healthz, /readyz, and
// /metrics routes. defaultRadiusKm applies when a request omits the radius.
func NewServer(addr string, alerts AlertService, ready ReadinessChecker, defaultRadiusKm float64, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		alerts:          alerts,
		defaultRadiusKm: defaultRadiusKm,
		logger:          logger,
	}

	mux.HandleFunc("GET /v1/alerts", s.handleAlerts)
	mux.HandleFunc("GET /v1/alerts/region", s.handleRegionAlerts)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer.Handler = withRequestID(withAccessLog(logger, mux))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	observer, radius, err := parseGeoParams(r, s.defaultRadiusKm)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	alerts := s.alerts.GetAllAlerts(r.Context(), observer, radius)
	writeJSON(w, http.StatusOK, newAlertListResponse(alerts))
}

func (s *Server) handleRegionAlerts(w http.ResponseWriter, r *http.Request) {
	observer, radius, err := parseGeoParams(r, s.defaultRadiusKm)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	state := r.URL.Query().Get("state")
	city := r.URL.Query().Get("city")
	if state == "" && city == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "state or city is required"})
		return
	}

	alerts := s.alerts.GetAlertsForRegion(r.Context(), state, city, observer, radius)
	writeJSON(w, http.StatusOK, newAlertListResponse(alerts))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// parseGeoParams extracts the optional observer point and radius from the
// query string. lat and lon must be supplied together; radius falls back to
// the server default.
func parseGeoParams(r *http.Request, defaultRadiusKm float64) (*domain.Point, float64, error) {
	q := r.URL.Query()

	radius := defaultRadiusKm
	if s := q.Get("radius"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, 0, fmt.Errorf("invalid radius %q", s)
		}
		radius = v
	}

	latStr, lonStr := q.Get("lat"), q.Get("lon")
	if latStr == "" && lonStr == "" {
		return nil, radius, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, 0, errors.New("lat and lon must be supplied together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, 0, fmt.Errorf("invalid lat %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, 0, fmt.Errorf("invalid lon %q", lonStr)
	}

	return &domain.Point{Lat: lat, Lon: lon}, radius, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
