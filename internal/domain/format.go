package domain

import (
	"fmt"
	"math"
	"time"
)

// severityColors maps each tier to its display color (Material palette hex).
var severityColors = map[Severity]string{
	SeverityCritical: "#d32f2f",
	SeverityHigh:     "#f57c00",
	SeverityMedium:   "#fbc02d",
	SeverityLow:      "#388e3c",
}

// SeverityColor returns the display color for a severity tier.
func SeverityColor(s Severity) string {
	if color, ok := severityColors[s]; ok {
		return color
	}
	return severityColors[SeverityLow]
}

// categoryIcons maps the common vocabulary to icon tokens for the
// presentation layer. Unknown categories get the generic warning icon.
var categoryIcons = map[Category]string{
	CategoryFire:       "local_fire_department",
	CategoryStorm:      "thunderstorm",
	CategoryFlood:      "flood",
	CategoryDrought:    "water_drop",
	CategoryEarthquake: "earthquake",
	CategoryVolcano:    "volcano",
	CategoryLandslide:  "terrain",
	CategoryIce:        "ac_unit",
	CategorySnow:       "weather_snowy",
	CategoryDustStorm:  "air",
	CategoryCyclone:    "cyclone",
	CategoryTsunami:    "tsunami",
}

// CategoryIcon returns the display icon token for a category.
func CategoryIcon(c Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "warning"
}

// FormatDistance renders a fractional kilometre distance for display:
// sub-kilometre values as metres, 1–10 km to one decimal, 10 km and above
// rounded to whole kilometres.
//
//	0.5  -> "500m away"
//	5.3  -> "5.3km away"
//	42   -> "42km away"
func FormatDistance(km float64) string {
	switch {
	case km < 1:
		return fmt.Sprintf("%.0fm away", km*1000)
	case km < 10:
		return fmt.Sprintf("%.1fkm away", km)
	default:
		return fmt.Sprintf("%.0fkm away", km)
	}
}

// RoundKm rounds a fractional distance to the nearest whole kilometre for
// display-adjacent consumers. Filtering and sorting use the fractional value.
func RoundKm(km float64) float64 {
	return math.Round(km)
}

// FormatAge renders how long ago a timestamp occurred relative to the package
// clock. Boundaries are exactly one minute, 24 hours, and 7×24 hours; older
// timestamps render as an absolute date.
func FormatAge(t time.Time) string {
	elapsed := clock.Now().Sub(t)

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return pluralize(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return pluralize(int(elapsed.Hours()), "hour")
	case elapsed < 7*24*time.Hour:
		return pluralize(int(elapsed.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
