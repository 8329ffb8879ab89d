package http

import (
	"time"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

// alertJSON is the wire form of an alert, enriched with the display fields
// the presentation layer renders directly. DistanceKm is whole-kilometre
// rounded; the fractional value stays internal.
type alertJSON struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Severity      string    `json:"severity"`
	SeverityColor string    `json:"severity_color"`
	Icon          string    `json:"icon"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Address       string    `json:"address,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time,omitzero"`
	Age           string    `json:"age"`
	Source        string    `json:"source"`
	AffectedAreas []string  `json:"affected_areas,omitempty"`
	DistanceKm    float64   `json:"distance_km"`
	Distance      string    `json:"distance"`
}

type alertListResponse struct {
	Alerts []alertJSON `json:"alerts"`
	Count  int         `json:"count"`
}

func newAlertListResponse(alerts []domain.Alert) alertListResponse {
	out := make([]alertJSON, len(alerts))
	for i, a := range alerts {
		out[i] = alertJSON{
			ID:            a.ID,
			Title:         a.Title,
			Description:   a.Description,
			Category:      string(a.Category),
			Severity:      string(a.Severity),
			SeverityColor: domain.SeverityColor(a.Severity),
			Icon:          domain.CategoryIcon(a.Category),
			Latitude:      a.Location.Latitude,
			Longitude:     a.Location.Longitude,
			Address:       a.Location.Address,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Age:           domain.FormatAge(a.StartTime),
			Source:        a.Source,
			AffectedAreas: a.AffectedAreas,
			DistanceKm:    domain.RoundKm(a.Distance),
			Distance:      domain.FormatDistance(a.Distance),
		}
	}
	return alertListResponse{Alerts: out, Count: len(out)}
}
