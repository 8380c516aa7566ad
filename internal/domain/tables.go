package domain

import (
	"strings"
	"time"
)

const (
	// DefaultAircraftScore is used when an aircraft type has no table entry.
	DefaultAircraftScore = 60

	// DefaultSeasonalRoughness is used when a month has no seasonal entry.
	DefaultSeasonalRoughness = 25
)

// monthKeys maps the 3-letter month keys used by the reference data files
// to their calendar position (Jan=0).
var monthKeys = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthKey returns the canonical 3-letter key for a month.
func MonthKey(m time.Month) string {
	return monthKeys[int(m)-1]
}

// MonthFromKey resolves a month from either a 3-letter key ("jan".."dec")
// or a 1-based numeric string ("1".."12"). Both encodings appear in
// historical reference data.
func MonthFromKey(key string) (time.Month, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range monthKeys {
		if key == k {
			return time.Month(i + 1), true
		}
	}
	switch key {
	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
		n := int(key[0] - '0')
		if len(key) == 2 {
			n = 10 + int(key[1]-'0')
		}
		return time.Month(n), true
	}
	return 0, false
}

// MonthSeries is the canonical per-month value store that both historical
// encodings (12-element array and month-keyed object) normalize into.
// Entries are optional per month.
type MonthSeries struct {
	values  [12]float64
	present [12]bool
}

// Set records a value for a month.
func (s *MonthSeries) Set(m time.Month, v float64) {
	s.values[int(m)-1] = v
	s.present[int(m)-1] = true
}

// Value returns the value for a month and whether an entry exists.
func (s MonthSeries) Value(m time.Month) (float64, bool) {
	return s.values[int(m)-1], s.present[int(m)-1]
}

// Len reports how many months have entries.
func (s MonthSeries) Len() int {
	n := 0
	for _, p := range s.present {
		if p {
			n++
		}
	}
	return n
}

// AircraftTable maps normalized aircraft type codes to comfort scores in [0,100].
type AircraftTable map[string]int

// NormalizeAircraftType uppercases and trims an aircraft type code.
func NormalizeAircraftType(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Score returns the comfort score for an aircraft type, clamped to [0,100].
// Unknown types resolve to DefaultAircraftScore, never an error.
func (t AircraftTable) Score(code string) int {
	if v, ok := t[NormalizeAircraftType(code)]; ok {
		return clampScore(v)
	}
	return DefaultAircraftScore
}

// RouteTable maps "ORIGIN-DEST" keys to per-month historical roughness.
type RouteTable map[string]MonthSeries

// RouteKey builds the ordered origin-destination lookup key, e.g. "JFK-LAX".
func RouteKey(origin, destination string) string {
	return strings.ToUpper(strings.TrimSpace(origin)) + "-" + strings.ToUpper(strings.TrimSpace(destination))
}

// Roughness returns the historical roughness for a route and month, and
// whether an entry exists. Absence triggers the seasonal fallback upstream.
func (t RouteTable) Roughness(origin, destination string, m time.Month) (float64, bool) {
	series, ok := t[RouteKey(origin, destination)]
	if !ok {
		return 0, false
	}
	return series.Value(m)
}

// SeasonalTable holds baseline roughness per calendar month, used when no
// route-specific entry exists.
type SeasonalTable struct {
	MonthSeries
}

// Roughness returns the seasonal baseline for a month, or
// DefaultSeasonalRoughness when the month has no entry.
func (t SeasonalTable) Roughness(m time.Month) float64 {
	if v, ok := t.Value(m); ok {
		return v
	}
	return DefaultSeasonalRoughness
}

// AirportTable maps 3-letter airport codes to coordinates, used to locate
// route endpoints for midpoint wind sampling.
type AirportTable map[string]Geo

// Coordinates returns the location of an airport, if known.
func (t AirportTable) Coordinates(code string) (Geo, bool) {
	g, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	return g, ok
}

// RefData bundles the read-only reference tables. It is loaded once at
// startup and injected into the Scorer, so tests can substitute fixtures.
type RefData struct {
	Aircraft AircraftTable
	Routes   RouteTable
	Seasonal SeasonalTable
	Airports AirportTable
}
