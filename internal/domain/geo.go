package domain

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometres:
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
//	c = 2·atan2(√a, √(1−a))
//	d = R·c
func HaversineKm(from, to Point) float64 {
	lat1 := from.Lat * math.Pi / 180
	lon1 := from.Lon * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	lon2 := to.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsNearby reports whether the alert lies within radiusKm of the observer.
// The distance is rounded to the nearest whole kilometre first, matching the
// radius filter in Rank.
func IsNearby(alert Alert, observer Point, radiusKm float64) bool {
	p := Point{Lat: alert.Location.Latitude, Lon: alert.Location.Longitude}
	return math.Round(HaversineKm(observer, p)) <= radiusKm
}

// BoundingBox is a rectangular lat/lon region used to constrain feed queries.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoxAround returns a bounding box of ±degrees around the given point.
func BoxAround(p Point, degrees float64) BoundingBox {
	return BoundingBox{
		MinLat: p.Lat - degrees,
		MaxLat: p.Lat + degrees,
		MinLon: p.Lon - degrees,
		MaxLon: p.Lon + degrees,
	}
}

// DefaultRegionBox is the fixed continental box used when no observer point
// is supplied: the Indian subcontinent, matching the default feed queries.
var DefaultRegionBox = BoundingBox{MinLat: 6.0, MaxLat: 38.0, MinLon: 68.0, MaxLon: 98.0}
