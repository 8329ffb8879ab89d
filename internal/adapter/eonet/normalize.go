package eonet

import (
	"time"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

// categoryTable maps EONET category titles to the common vocabulary.
// Titles outside the table pass through unchanged.
var categoryTable = map[string]domain.Category{
	"Wildfires":         domain.CategoryFire,
	"Severe Storms":     domain.CategoryStorm,
	"Floods":            domain.CategoryFlood,
	"Drought":           domain.CategoryDrought,
	"Earthquakes":       domain.CategoryEarthquake,
	"Volcanoes":         domain.CategoryVolcano,
	"Landslides":        domain.CategoryLandslide,
	"Sea and Lake Ice":  domain.CategoryIce,
	"Snow":              domain.CategorySnow,
	"Dust and Haze":     domain.CategoryDustStorm,
	"Tropical Cyclones": domain.CategoryCyclone,
	"Tsunamis":          domain.CategoryTsunami,
}

// severityForCategory classifies an event by its EONET category title.
// EONET carries no magnitude for most event types, so the tier is a
// per-category heuristic.
func severityForCategory(title string) domain.Severity {
	switch title {
	case "Earthquakes", "Volcanoes":
		return domain.SeverityCritical
	case "Severe Storms", "Floods":
		return domain.SeverityHigh
	case "Wildfires", "Landslides":
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// toAlert maps an EONET event to the common alert shape. The mapping is
// total: missing categories, geometry, or dates fall back to safe defaults
// rather than failing the batch.
func toAlert(e event) domain.Alert {
	var providerCategory string
	if len(e.Categories) > 0 {
		providerCategory = e.Categories[0].Title
	}

	cat, ok := categoryTable[providerCategory]
	if !ok {
		cat = domain.Category(providerCategory)
		if providerCategory == "" {
			cat = "Unknown"
		}
	}

	var loc domain.Location
	startTime := domain.Now()
	if len(e.Geometry) > 0 {
		g := e.Geometry[0]
		if len(g.Coordinates) >= 2 {
			loc.Longitude = g.Coordinates[0]
			loc.Latitude = g.Coordinates[1]
		}
		if t, err := time.Parse(time.RFC3339, g.Date); err == nil {
			startTime = t
		}
	}

	var areas []string
	for _, s := range e.Sources {
		areas = append(areas, s.ID)
	}

	return domain.Alert{
		ID:            Source + "-" + e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Category:      cat,
		Severity:      severityForCategory(providerCategory),
		Location:      loc,
		StartTime:     startTime,
		Source:        Source,
		AffectedAreas: areas,
	}
}
