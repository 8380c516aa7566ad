package domain

import (
	"context"
	"log/slog"
	"math"
)

// RealtimeSignal is the optional live-weather input to the scorer. Exactly
// one of the two shapes may be supplied per request; a nil signal means
// no live data was requested or obtainable.
type RealtimeSignal interface {
	realtimeScore() int
}

// AdvisorySignal carries live advisory indicators: whether a significant
// weather advisory is active along the route and how many pilot reports
// of turbulence were filed.
type AdvisorySignal struct {
	SignificantAdvisory bool
	PilotReports        int
}

func (s AdvisorySignal) realtimeScore() int {
	score := 100
	if s.SignificantAdvisory {
		score -= 25
	}
	pirep := s.PilotReports * 3
	if pirep > 20 {
		pirep = 20
	}
	if pirep > 0 {
		score -= pirep
	}
	return clampScore(score)
}

// PenaltySignal carries a precomputed point penalty, typically from the
// jet-stream wind sampling path.
type PenaltySignal struct {
	Points int
}

func (s PenaltySignal) realtimeScore() int {
	return clampScore(100 - s.Points)
}

// JetstreamPenaltyFromKnots maps an upper-air wind speed to a score
// penalty via a fixed step table.
func JetstreamPenaltyFromKnots(kts float64) int {
	switch {
	case kts >= 120:
		return 15
	case kts >= 100:
		return 12
	case kts >= 80:
		return 8
	case kts >= 60:
		return 4
	case kts >= 40:
		return 2
	default:
		return 0
	}
}

// WindSample is the scalar wind speed observed near the route midpoint.
// Samples are ephemeral, produced per request and never cached.
type WindSample struct {
	SpeedKnots float64
}

// WindSampler queries an external upper-air wind service at a coordinate,
// date, and UTC hour.
type WindSampler interface {
	SampleWind(ctx context.Context, at Geo, date string, hourUTC int) (WindSample, error)
}

// DefaultWindHourUTC is the upper-air sampling hour when none is configured.
const DefaultWindHourUTC = 12

// RealtimeEstimate is the outcome of a successful wind sample: the point
// penalty to feed the scorer and the rounded wind speed for display.
type RealtimeEstimate struct {
	Penalty   int `json:"penalty"`
	WindKnots int `json:"wind_knots"`
}

// EstimateRealtimePenalty samples upper-air wind at the great-circle
// midpoint of a route and converts it to a score penalty. It is
// best-effort: any sampler failure is logged and mapped to nil, and
// callers must treat nil identically to "no realtime signal requested".
func EstimateRealtimePenalty(ctx context.Context, sampler WindSampler, origin, destination Geo, date string, hourUTC int, logger *slog.Logger) *RealtimeEstimate {
	if sampler == nil {
		return nil
	}

	mid := Midpoint(origin, destination)
	sample, err := sampler.SampleWind(ctx, mid, date, hourUTC)
	if err != nil {
		logger.Warn("wind sample unavailable",
			"lat", mid.Lat,
			"lon", mid.Lon,
			"date", date,
			"error", err,
		)
		return nil
	}

	return &RealtimeEstimate{
		Penalty:   JetstreamPenaltyFromKnots(sample.SpeedKnots),
		WindKnots: int(math.Round(sample.SpeedKnots)),
	}
}
