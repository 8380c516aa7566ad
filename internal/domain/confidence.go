package domain

import (
	"math"
	"time"
)

// Confidence is the coarse trust level in a score, driven by forecast
// horizon and realtime data availability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ComputeConfidence classifies the forecast horizon for a flight date.
//
// Near-term forecasts (<=3 days) are trustworthy regardless of live data.
// Mid-term forecasts (4-10 days) need a live signal to be anything above
// Low. Long-term forecasts (>10 days) are never better than Low.
func ComputeConfidence(flightDate time.Time, hasRealtime bool) Confidence {
	daysAhead := int(math.Round(flightDate.Sub(clock.Now()).Hours() / 24))
	if daysAhead < 0 {
		daysAhead = 0
	}

	switch {
	case daysAhead <= 3:
		return ConfidenceHigh
	case daysAhead <= 10:
		if hasRealtime {
			return ConfidenceMedium
		}
		return ConfidenceLow
	default:
		return ConfidenceLow
	}
}
