package domain

import (
	"math"
	"sort"
)

// Rank orders a merged alert list for presentation: severity first (critical
// on top), distance from the observer as the tie-break, stable for equal
// pairs.
//
// When an observer is supplied, Distance is recomputed for every alert —
// overwriting anything a normalizer may have set — rounded to the nearest
// whole kilometre, and alerts beyond radiusKm are dropped (boundary
// inclusive: an alert whose rounded distance equals radiusKm survives, so
// 100.4 km stays inside a 100 km radius). Without an observer no distance is
// computed and no radius filtering occurs.
//
// The input slice is not modified.
func Rank(alerts []Alert, observer *Point, radiusKm float64) []Alert {
	ranked := make([]Alert, 0, len(alerts))

	if observer == nil {
		ranked = append(ranked, alerts...)
	} else {
		for _, alert := range alerts {
			p := Point{Lat: alert.Location.Latitude, Lon: alert.Location.Longitude}
			alert.Distance = math.Round(HaversineKm(*observer, p))
			if alert.Distance > radiusKm {
				continue
			}
			ranked = append(ranked, alert)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Severity.Rank(), ranked[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}
