package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureRefData builds a small table set with known values:
// A350 scores 90, JFK-LAX January roughness 20, seasonal January
// roughness 20.
func fixtureRefData() *RefData {
	var jfkLax MonthSeries
	jfkLax.Set(time.January, 20)
	jfkLax.Set(time.July, 55)

	var seasonal SeasonalTable
	seasonal.Set(time.January, 20)
	seasonal.Set(time.July, 40)

	return &RefData{
		Aircraft: AircraftTable{"A350": 90, "B737": 70, "E190": 62},
		Routes:   RouteTable{"JFK-LAX": jfkLax},
		Seasonal: seasonal,
		Airports: AirportTable{
			"JFK": {Lat: 40.6413, Lon: -73.7781},
			"LAX": {Lat: 33.9416, Lon: -118.4085},
		},
	}
}

func TestComputeTCI_BaselineBlend(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-01-10",
		AircraftType: "A350",
	})
	require.NoError(t, err)

	// round(90*0.4 + 80*0.6) = 84
	assert.Equal(t, 84, result.TCI)
	assert.Equal(t, BucketSmooth, result.Bucket)
	assert.Equal(t, ScoringBreakdown{
		Aircraft: 90,
		Route:    80,
		Season:   80,
		Realtime: 100,
	}, result.Breakdown)
}

func TestComputeTCI_AdvisorySignal(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-01-10",
		AircraftType: "A350",
		Realtime:     AdvisorySignal{SignificantAdvisory: true, PilotReports: 2},
	})
	require.NoError(t, err)

	// realtime = 100 - 25 - 6 = 69
	// round(90*0.4 + 80*0.45 + 69*0.15) = round(82.35) = 82
	assert.Equal(t, 69, result.Breakdown.Realtime)
	assert.Equal(t, 82, result.TCI)
	assert.Equal(t, BucketSmooth, result.Bucket)
}

func TestComputeTCI_PenaltySignal(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-01-10",
		AircraftType: "A350",
		Realtime:     PenaltySignal{Points: 12},
	})
	require.NoError(t, err)

	// realtime = 100 - 12 = 88
	// round(90*0.4 + 80*0.45 + 88*0.15) = round(85.2) = 85
	assert.Equal(t, 88, result.Breakdown.Realtime)
	assert.Equal(t, 85, result.TCI)
}

func TestComputeTCI_UnknownAircraftDefaults(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-01-10",
		AircraftType: "ZZZZ",
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultAircraftScore, result.Breakdown.Aircraft)
}

func TestComputeTCI_UnknownRouteFallsBackToSeasonal(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "SFO",
		Destination:  "ORD",
		Date:         "2026-07-02",
		AircraftType: "B737",
	})
	require.NoError(t, err)

	// Seasonal July roughness 40 -> route score 60.
	assert.Equal(t, 60, result.Breakdown.Route)
	assert.Equal(t, 60, result.Breakdown.Season)
}

func TestComputeTCI_UnknownMonthUsesDefaultRoughness(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	// Fixture seasonal table has no March entry.
	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "SFO",
		Destination:  "ORD",
		Date:         "2026-03-15",
		AircraftType: "B737",
	})
	require.NoError(t, err)

	assert.Equal(t, 100-DefaultSeasonalRoughness, result.Breakdown.Route)
	assert.Equal(t, 100-DefaultSeasonalRoughness, result.Breakdown.Season)
}

func TestComputeTCI_RouteWithoutMonthEntryFallsBack(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	// JFK-LAX exists but has no March entry; seasonal has none either.
	result, err := scorer.ComputeTCI(ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-03-15",
		AircraftType: "A350",
	})
	require.NoError(t, err)

	assert.Equal(t, 75, result.Breakdown.Route)
}

func TestComputeTCI_InvalidDate(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	tests := []string{"", "not-a-date", "2026-13-40", "10/01/2026"}
	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			_, err := scorer.ComputeTCI(ScoringInput{
				Origin:       "JFK",
				Destination:  "LAX",
				Date:         date,
				AircraftType: "A350",
			})
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestComputeTCI_Deterministic(t *testing.T) {
	scorer := NewScorer(fixtureRefData())
	in := ScoringInput{
		Origin:       "JFK",
		Destination:  "LAX",
		Date:         "2026-01-10",
		AircraftType: "A350",
		Realtime:     AdvisorySignal{SignificantAdvisory: true, PilotReports: 2},
	}

	first, err := scorer.ComputeTCI(in)
	require.NoError(t, err)
	second, err := scorer.ComputeTCI(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TCI must be reproducible by re-applying the blend weights to the
// breakdown, and everything must stay inside [0,100].
func TestComputeTCI_BreakdownInvariants(t *testing.T) {
	scorer := NewScorer(fixtureRefData())

	inputs := []ScoringInput{
		{Origin: "JFK", Destination: "LAX", Date: "2026-01-10", AircraftType: "A350"},
		{Origin: "JFK", Destination: "LAX", Date: "2026-07-04", AircraftType: "E190",
			Realtime: AdvisorySignal{SignificantAdvisory: true, PilotReports: 50}},
		{Origin: "XXX", Destination: "YYY", Date: "2026-03-01", AircraftType: "",
			Realtime: PenaltySignal{Points: 200}},
		{Origin: "SFO", Destination: "ORD", Date: "2026-12-24", AircraftType: "B737",
			Realtime: PenaltySignal{Points: -50}},
	}

	for _, in := range inputs {
		result, err := scorer.ComputeTCI(in)
		require.NoError(t, err)

		for _, v := range []int{result.TCI, result.Breakdown.Aircraft,
			result.Breakdown.Route, result.Breakdown.Season, result.Breakdown.Realtime} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}

		w := Weights(in.Realtime != nil)
		reblended := clampRound(
			float64(result.Breakdown.Aircraft)*w.Aircraft +
				float64(result.Breakdown.Route)*w.Route +
				float64(result.Breakdown.Realtime)*w.Realtime)
		assert.Equal(t, reblended, result.TCI)

		assert.Equal(t, bucketFor(result.TCI), result.Bucket)
	}
}

func TestBucketThresholds(t *testing.T) {
	tests := []struct {
		tci      int
		expected Bucket
	}{
		{100, BucketSmooth},
		{80, BucketSmooth},
		{79, BucketModerate},
		{60, BucketModerate},
		{59, BucketTurbulent},
		{40, BucketTurbulent},
		{39, BucketAvoid},
		{0, BucketAvoid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, bucketFor(tt.tci), "tci=%d", tt.tci)
	}
}

func TestWeights(t *testing.T) {
	base := Weights(false)
	assert.Equal(t, BlendWeights{Aircraft: 0.40, Route: 0.60, Realtime: 0}, base)

	live := Weights(true)
	assert.Equal(t, BlendWeights{Aircraft: 0.40, Route: 0.45, Realtime: 0.15}, live)

	// Both weight sets sum to 1 so component scores and TCI share a scale.
	assert.InDelta(t, 1.0, base.Aircraft+base.Route+base.Realtime, 1e-9)
	assert.InDelta(t, 1.0, live.Aircraft+live.Route+live.Realtime, 1e-9)
}

func TestParseFlightDate(t *testing.T) {
	d, err := ParseFlightDate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseFlightDate("  2026-01-10 ")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())

	_, err = ParseFlightDate("2026-1-10")
	require.ErrorIs(t, err, ErrInvalidDate)
}
