package domain

// Severity is the ordinal urgency tier of an alert: low < medium < high < critical.
// Every alert carries exactly one of the four tiers; there is no empty state.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank maps a severity to its sort rank: critical 0, high 1, medium 2, low 3.
// Lower ranks sort first. Unknown values rank with low.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// SeverityFromMagnitude classifies a seismic event by Richter magnitude.
// Thresholds are inclusive lower bounds: ≥7.0 critical, ≥6.0 high,
// ≥4.5 medium, else low.
func SeverityFromMagnitude(magnitude float64) Severity {
	switch {
	case magnitude >= 7.0:
		return SeverityCritical
	case magnitude >= 6.0:
		return SeverityHigh
	case magnitude >= 4.5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
