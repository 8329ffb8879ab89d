package domain

import "time"

// Category is the common disaster vocabulary shared by both providers.
// Provider categories outside the fixed set pass through unchanged.
type Category string

const (
	CategoryFire       Category = "Fire"
	CategoryStorm      Category = "Storm"
	CategoryFlood      Category = "Flood"
	CategoryDrought    Category = "Drought"
	CategoryEarthquake Category = "Earthquake"
	CategoryVolcano    Category = "Volcano"
	CategoryLandslide  Category = "Landslide"
	CategoryIce        Category = "Ice"
	CategorySnow       Category = "Snow"
	CategoryDustStorm  Category = "Dust Storm"
	CategoryCyclone    Category = "Cyclone"
	CategoryTsunami    Category = "Tsunami"
)

// Location holds an alert's coordinates plus an optional free-text address.
// Latitude and longitude default to 0,0 when the provider supplies no
// geometry; that is a known degenerate case, not an error.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Alert is the unified representation of a disaster event from any provider.
type Alert struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Location    Location `json:"location"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitzero"`

	// Source identifies the producing provider ("eonet" or "usgs").
	Source string `json:"source"`

	// AffectedAreas carries provider-specific area identifiers unmodified.
	AffectedAreas []string `json:"affected_areas,omitempty"`

	// Distance is the great-circle distance in kilometres from the observer
	// point, rounded to the nearest whole kilometre when ranking recomputes
	// it. Zero until ranking runs with a known observer.
	Distance float64 `json:"distance"`
}

// Point is a WGS-84 latitude/longitude pair, typically the observer point.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
