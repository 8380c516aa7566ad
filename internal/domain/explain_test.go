package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanLabel(t *testing.T) {
	tests := []struct {
		tci      int
		expected string
	}{
		{100, "Glass-Smooth"},
		{85, "Glass-Smooth"},
		{84, "Mostly Smooth"},
		{70, "Mostly Smooth"},
		{69, "Choppy"},
		{55, "Choppy"},
		{54, "Rough"},
		{0, "Rough"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HumanLabel(tt.tci), "tci=%d", tt.tci)
	}
}

// Display labels and operational buckets intentionally diverge between
// their thresholds; a 82 is Smooth operationally but not Glass-Smooth.
func TestHumanLabelDivergesFromBucket(t *testing.T) {
	assert.Equal(t, BucketSmooth, bucketFor(82))
	assert.Equal(t, "Mostly Smooth", HumanLabel(82))
}

func TestExplainResult_TruncatesToTwoMessages(t *testing.T) {
	// Every threshold fires; only the first two messages survive.
	r := ScoringResult{Breakdown: ScoringBreakdown{
		Aircraft: 90, Route: 85, Season: 70, Realtime: 80,
	}}

	out := ExplainResult(r)

	assert.Equal(t, "Best-in-class ride quality for this aircraft. This path is usually calm.", out)
}

func TestExplainResult_PrecedenceOrder(t *testing.T) {
	// Aircraft threshold misses, so route and season lead.
	r := ScoringResult{Breakdown: ScoringBreakdown{
		Aircraft: 60, Route: 65, Season: 70, Realtime: 100,
	}}

	out := ExplainResult(r)

	assert.Equal(t, "Route is typically manageable. Seasonal winds are usually stable now.", out)
}

func TestExplainResult_RealtimeMessage(t *testing.T) {
	r := ScoringResult{Breakdown: ScoringBreakdown{
		Aircraft: 60, Route: 50, Season: 50, Realtime: 85,
	}}

	out := ExplainResult(r)

	assert.Contains(t, out, "Jet-stream strength elevated today")
}

func TestExplainResult_MidTierAircraft(t *testing.T) {
	r := ScoringResult{Breakdown: ScoringBreakdown{
		Aircraft: 72, Route: 50, Season: 44, Realtime: 100,
	}}

	out := ExplainResult(r)

	assert.Equal(t, "Modern airframe with good ride characteristics. Seasonal winds can add bumps.", out)
}

func TestExplainResult_NoApplicableMessages(t *testing.T) {
	r := ScoringResult{Breakdown: ScoringBreakdown{
		Aircraft: 60, Route: 50, Season: 50, Realtime: 100,
	}}

	assert.Empty(t, ExplainResult(r))
}

func TestContributions(t *testing.T) {
	assert.Equal(t, 36, AircraftContribution(90))
	assert.Equal(t, 48, RouteContribution(80))
	assert.Equal(t, 40, AircraftContribution(100))
	assert.Equal(t, 60, RouteContribution(100))
	assert.Equal(t, 0, AircraftContribution(0))
}

func TestAircraftNote(t *testing.T) {
	// Variant codes resolve to their family note.
	assert.Contains(t, AircraftNote("A35K"), "A350")
	assert.Contains(t, AircraftNote("b789"), "787")
	assert.Contains(t, AircraftNote("B77W"), "Heavy airframe")
	assert.Contains(t, AircraftNote("E90"), "Regional jet")

	// Exact family strings work as-is.
	assert.Contains(t, AircraftNote("B737"), "Narrow-body")

	// Unknown types get the neutral fallback.
	note := AircraftNote("ZZZZ")
	assert.True(t, strings.HasPrefix(note, "Ride quality varies"))
	assert.Equal(t, note, AircraftNote(""))
}
