package domain

import "strings"

// regionProximityKm is the distance under which an alert is considered part
// of the user's region regardless of any textual match.
const regionProximityKm = 200.0

// FilterRegion narrows a ranked list to alerts plausibly relevant to a named
// region. An alert is retained when it is within regionProximityKm of the
// observer OR its title or address mentions the state or city name
// (case-insensitive substring). The OR is deliberate: a province-wide
// advisory can name the region while sitting far from the observer point.
func FilterRegion(alerts []Alert, state, city string) []Alert {
	state = strings.ToLower(strings.TrimSpace(state))
	city = strings.ToLower(strings.TrimSpace(city))

	filtered := make([]Alert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.Distance <= regionProximityKm || mentionsPlace(alert, state) || mentionsPlace(alert, city) {
			filtered = append(filtered, alert)
		}
	}
	return filtered
}

func mentionsPlace(alert Alert, place string) bool {
	if place == "" {
		return false
	}
	return strings.Contains(strings.ToLower(alert.Title), place) ||
		strings.Contains(strings.ToLower(alert.Location.Address), place)
}
