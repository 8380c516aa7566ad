package domain

import (
	"math"
	"strings"
)

// HumanLabel maps a TCI score to the passenger-facing display label.
// Thresholds (85/70/55) deliberately differ from the operational Bucket
// thresholds; the two schemes serve different UI surfaces.
func HumanLabel(tci int) string {
	switch {
	case tci >= 85:
		return "Glass-Smooth"
	case tci >= 70:
		return "Mostly Smooth"
	case tci >= 55:
		return "Choppy"
	default:
		return "Rough"
	}
}

// ExplainResult produces up to two short sentences describing the
// strongest factors behind a score, in fixed precedence order: aircraft,
// route, season, realtime.
func ExplainResult(r ScoringResult) string {
	var msgs []string
	b := r.Breakdown

	if b.Aircraft >= 85 {
		msgs = append(msgs, "Best-in-class ride quality for this aircraft.")
	} else if b.Aircraft >= 70 {
		msgs = append(msgs, "Modern airframe with good ride characteristics.")
	}

	if b.Route >= 80 {
		msgs = append(msgs, "This path is usually calm.")
	} else if b.Route >= 60 {
		msgs = append(msgs, "Route is typically manageable.")
	}

	if b.Season >= 65 {
		msgs = append(msgs, "Seasonal winds are usually stable now.")
	} else if b.Season < 45 {
		msgs = append(msgs, "Seasonal winds can add bumps.")
	}

	if b.Realtime < 90 {
		msgs = append(msgs, "Jet-stream strength elevated today, expect light chop.")
	}

	if len(msgs) > 2 {
		msgs = msgs[:2]
	}
	return strings.Join(msgs, " ")
}

// AircraftContribution returns the aircraft component's point contribution
// under the baseline 40% weight. Display-only: the canonical score is the
// weighted blend in ComputeTCI.
func AircraftContribution(aircraftScore int) int {
	return int(math.Round(float64(aircraftScore) * 40 / 100))
}

// RouteContribution returns the route component's point contribution under
// the baseline 60% weight. Display-only, like AircraftContribution.
func RouteContribution(routeScore int) int {
	return int(math.Round(float64(routeScore) * 60 / 100))
}
