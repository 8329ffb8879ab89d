package usgs

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/couchcryptid/disaster-alert-service/internal/domain"
)

// toAlert maps a USGS GeoJSON feature to the common alert shape. The mapping
// is total: missing properties or geometry fall back to safe defaults.
func toAlert(f feature) domain.Alert {
	var loc domain.Location
	var depth float64
	coords := f.Geometry.Coordinates
	if len(coords) >= 2 {
		loc.Longitude = coords[0]
		loc.Latitude = coords[1]
	}
	if len(coords) >= 3 {
		depth = coords[2]
	}
	loc.Address = f.Properties.Place

	startTime := domain.Now()
	if f.Properties.Time != 0 {
		startTime = time.UnixMilli(f.Properties.Time).UTC()
	}

	title := f.Properties.Title
	if title == "" {
		title = "M " + strconv.FormatFloat(f.Properties.Mag, 'f', -1, 64) + " earthquake"
	}

	return domain.Alert{
		ID:          Source + "-" + f.ID,
		Title:       title,
		Description: describeQuake(f.Properties.Mag, depth),
		Category:    domain.CategoryEarthquake,
		Severity:    domain.SeverityFromMagnitude(f.Properties.Mag),
		Location:    loc,
		StartTime:   startTime,
		Source:      Source,
	}
}

// describeQuake synthesizes the human-readable description, with depth
// rounded to the nearest whole kilometre.
func describeQuake(magnitude, depthKm float64) string {
	return fmt.Sprintf("Magnitude %s earthquake at depth %d km",
		strconv.FormatFloat(magnitude, 'f', -1, 64), int(math.Round(depthKm)))
}
