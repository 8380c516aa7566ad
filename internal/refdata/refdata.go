// Package refdata loads the static reference tables (aircraft comfort,
// route roughness, seasonal roughness, airport coordinates) from JSON
// documents into the domain lookup types.
//
// Month-indexed data arrives in two historical encodings and both are
// normalized into the same lookup contract:
//
//	array:  [15, 18, 20, ...]            12 entries, Jan first
//	object: {"jan": 15, "feb": 18, ...}  3-letter keys or 1-based "1".."12"
//
// The seasonality file additionally accepts the legacy list form
// {"months":[{"month":1,"roughness":20}, ...]} shipped by earlier data
// exports.
//
// Loading happens once at process start and is a precondition for
// scoring; malformed documents fail startup rather than degrading.
package refdata

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/ride-comfort-service/internal/domain"
)

//go:embed data/*.json
var defaultFS embed.FS

const (
	aircraftFile = "aircraft.json"
	routeFile    = "route_roughness.json"
	seasonalFile = "seasonality.json"
	airportsFile = "airports.json"
)

// Default loads the reference tables embedded in the binary.
func Default() (*domain.RefData, error) {
	return load(func(name string) ([]byte, error) {
		return defaultFS.ReadFile("data/" + name)
	})
}

// LoadDir loads the reference tables from JSON files in a directory,
// letting operators override the embedded defaults.
func LoadDir(dir string) (*domain.RefData, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(readFile func(name string) ([]byte, error)) (*domain.RefData, error) {
	aircraft, err := loadAircraft(readFile)
	if err != nil {
		return nil, err
	}
	routes, err := loadRoutes(readFile)
	if err != nil {
		return nil, err
	}
	seasonal, err := loadSeasonal(readFile)
	if err != nil {
		return nil, err
	}
	airports, err := loadAirports(readFile)
	if err != nil {
		return nil, err
	}

	return &domain.RefData{
		Aircraft: aircraft,
		Routes:   routes,
		Seasonal: seasonal,
		Airports: airports,
	}, nil
}

func loadAircraft(readFile func(string) ([]byte, error)) (domain.AircraftTable, error) {
	data, err := readFile(aircraftFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", aircraftFile, err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", aircraftFile, err)
	}

	table := make(domain.AircraftTable, len(raw))
	for code, score := range raw {
		table[domain.NormalizeAircraftType(code)] = score
	}
	return table, nil
}

func loadRoutes(readFile func(string) ([]byte, error)) (domain.RouteTable, error) {
	data, err := readFile(routeFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", routeFile, err)
	}

	var raw map[string]monthSeries
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", routeFile, err)
	}

	table := make(domain.RouteTable, len(raw))
	for key, series := range raw {
		table[key] = series.MonthSeries
	}
	return table, nil
}

func loadSeasonal(readFile func(string) ([]byte, error)) (domain.SeasonalTable, error) {
	data, err := readFile(seasonalFile)
	if err != nil {
		return domain.SeasonalTable{}, fmt.Errorf("read %s: %w", seasonalFile, err)
	}

	// Legacy list form: {"months":[{"month":1,"roughness":20}, ...]}.
	var legacy struct {
		Months []struct {
			Month     int     `json:"month"`
			Roughness float64 `json:"roughness"`
		} `json:"months"`
	}
	if err := json.Unmarshal(data, &legacy); err == nil && len(legacy.Months) > 0 {
		var table domain.SeasonalTable
		for _, m := range legacy.Months {
			if m.Month < 1 || m.Month > 12 {
				return domain.SeasonalTable{}, fmt.Errorf("parse %s: month %d out of range", seasonalFile, m.Month)
			}
			table.Set(time.Month(m.Month), m.Roughness)
		}
		return table, nil
	}

	var series monthSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return domain.SeasonalTable{}, fmt.Errorf("parse %s: %w", seasonalFile, err)
	}
	return domain.SeasonalTable{MonthSeries: series.MonthSeries}, nil
}

func loadAirports(readFile func(string) ([]byte, error)) (domain.AirportTable, error) {
	data, err := readFile(airportsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", airportsFile, err)
	}

	var raw map[string]domain.Geo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", airportsFile, err)
	}
	return domain.AirportTable(raw), nil
}

// monthSeries decodes either month encoding into domain.MonthSeries.
type monthSeries struct {
	domain.MonthSeries
}

func (s *monthSeries) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var arr []float64
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		if len(arr) != 12 {
			return fmt.Errorf("month array must have 12 entries, got %d", len(arr))
		}
		for i, v := range arr {
			s.Set(time.Month(i+1), v)
		}
		return nil
	}

	var obj map[string]float64
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for key, v := range obj {
		m, ok := domain.MonthFromKey(key)
		if !ok {
			return fmt.Errorf("unknown month key %q", key)
		}
		s.Set(m, v)
	}
	return nil
}
