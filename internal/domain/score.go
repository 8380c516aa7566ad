package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidDate marks a flight date that could not be parsed. Month
// extraction depends on the date, so scoring fails fast instead of
// silently defaulting.
var ErrInvalidDate = errors.New("invalid flight date")

// flightDateLayout is the ISO calendar date format accepted by the scorer.
const flightDateLayout = "2006-01-02"

// ParseFlightDate parses an ISO calendar date ("YYYY-MM-DD").
func ParseFlightDate(s string) (time.Time, error) {
	t, err := time.Parse(flightDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Bucket is the operational four-level classification of a TCI score.
// It uses the 80/60/40 thresholds; the display label scheme in explain.go
// is a separate, coarser-grained scale for UI surfaces.
type Bucket string

const (
	BucketSmooth    Bucket = "Smooth"
	BucketModerate  Bucket = "Moderate"
	BucketTurbulent Bucket = "Turbulent"
	BucketAvoid     Bucket = "Avoid"
)

func bucketFor(tci int) Bucket {
	switch {
	case tci >= 80:
		return BucketSmooth
	case tci >= 60:
		return BucketModerate
	case tci >= 40:
		return BucketTurbulent
	default:
		return BucketAvoid
	}
}

// ScoringInput describes one flight to score. Realtime is nil when no
// live signal was requested or obtainable.
type ScoringInput struct {
	Origin       string
	Destination  string
	Date         string // ISO calendar date, "YYYY-MM-DD"
	AircraftType string
	Realtime     RealtimeSignal
}

// ScoringBreakdown holds the four independently clamped component scores.
// All four are retained for display even when not all enter the blend.
type ScoringBreakdown struct {
	Aircraft int `json:"aircraft"`
	Route    int `json:"route"`
	Season   int `json:"season"`
	Realtime int `json:"realtime"`
}

// ScoringResult is the output of ComputeTCI. TCI is always reproducible
// by re-applying the blend weights to the breakdown.
type ScoringResult struct {
	TCI       int              `json:"tci"`
	Bucket    Bucket           `json:"bucket"`
	Breakdown ScoringBreakdown `json:"breakdown"`
}

// BlendWeights are the per-component weights applied by ComputeTCI.
type BlendWeights struct {
	Aircraft float64
	Route    float64
	Realtime float64
}

// Weights returns the blend weights in effect. The aircraft weight is
// fixed; route weight shrinks to make room for the realtime component
// when a live signal is present.
func Weights(hasRealtime bool) BlendWeights {
	if hasRealtime {
		return BlendWeights{Aircraft: 0.40, Route: 0.45, Realtime: 0.15}
	}
	return BlendWeights{Aircraft: 0.40, Route: 0.60, Realtime: 0}
}

// Scorer computes Turbulence Comfort Index scores against a fixed set of
// reference tables. It performs no I/O and is safe for concurrent use.
type Scorer struct {
	ref *RefData
}

// NewScorer creates a Scorer over the given reference tables.
func NewScorer(ref *RefData) *Scorer {
	return &Scorer{ref: ref}
}

// ComputeTCI resolves the component scores for a flight, blends them into
// a 0-100 index, and classifies it.
//
// Missing reference data never errors: unknown aircraft types score
// DefaultAircraftScore, unknown routes fall back to the seasonal baseline,
// and a missing seasonal month falls back to DefaultSeasonalRoughness.
// The only error condition is an unparseable date.
func (s *Scorer) ComputeTCI(in ScoringInput) (ScoringResult, error) {
	date, err := ParseFlightDate(in.Date)
	if err != nil {
		return ScoringResult{}, err
	}
	month := date.Month()

	aircraftScore := s.ref.Aircraft.Score(in.AircraftType)

	seasonalRoughness := s.ref.Seasonal.Roughness(month)
	seasonScore := clampRound(100 - seasonalRoughness)

	roughness, ok := s.ref.Routes.Roughness(in.Origin, in.Destination, month)
	if !ok {
		roughness = seasonalRoughness
	}
	routeScore := clampRound(100 - roughness)

	realtimeScore := 100
	hasRealtime := in.Realtime != nil
	if hasRealtime {
		realtimeScore = in.Realtime.realtimeScore()
	}

	w := Weights(hasRealtime)
	tci := clampScore(int(math.Round(
		float64(aircraftScore)*w.Aircraft +
			float64(routeScore)*w.Route +
			float64(realtimeScore)*w.Realtime,
	)))

	return ScoringResult{
		TCI:    tci,
		Bucket: bucketFor(tci),
		Breakdown: ScoringBreakdown{
			Aircraft: aircraftScore,
			Route:    routeScore,
			Season:   seasonScore,
			Realtime: realtimeScore,
		},
	}, nil
}

// clampScore limits an integer score to [0,100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampRound rounds a score to the nearest integer and clamps it to [0,100].
func clampRound(v float64) int {
	return clampScore(int(math.Round(v)))
}
