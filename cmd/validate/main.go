// Command validate performs integrity checks across the bundled reference
// tables: aircraft stability scores, per-route monthly roughness, the
// seasonal baseline, and airport coordinates. It verifies key formats,
// value ranges, month coverage, and cross-table consistency.
//
// Usage:
//
//	go run ./cmd/validate                      # embedded tables
//	go run ./cmd/validate -data-dir ./data     # override directory
package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/couchcryptid/ride-comfort-service/internal/domain"
	"github.com/couchcryptid/ride-comfort-service/internal/refdata"
)

var (
	routeKeyPattern    = regexp.MustCompile(`^[A-Z]{3}-[A-Z]{3}$`)
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "", "reference table directory (empty uses the embedded tables)")
	flag.Parse()

	if code := run(*dataDir); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir string) int {
	fmt.Println("=== Reference Table Integrity Validation ===")
	fmt.Println()

	var (
		ref *domain.RefData
		err error
	)
	if dataDir != "" {
		ref, err = refdata.LoadDir(dataDir)
	} else {
		ref, err = refdata.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load reference tables: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateAircraft(ref),
		validateRoutes(ref),
		validateSeasonal(ref),
		validateAirports(ref),
		validateRouteEndpoints(ref),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Tables: %d aircraft, %d routes, %d airports\n",
		len(ref.Aircraft), len(ref.Routes), len(ref.Airports))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validateAircraft(ref *domain.RefData) *phase {
	p := &phase{name: "Aircraft score ranges and key format"}

	if len(ref.Aircraft) == 0 {
		p.errorf("aircraft table is empty")
		return p
	}
	for code, score := range ref.Aircraft {
		if code != strings.ToUpper(strings.TrimSpace(code)) {
			p.errorf("aircraft %q: key is not normalized", code)
		}
		if score < 0 || score > 100 {
			p.errorf("aircraft %q: score %d out of range [0,100]", code, score)
		}
	}
	return p
}

func validateRoutes(ref *domain.RefData) *phase {
	p := &phase{name: "Route keys and monthly roughness ranges"}

	if len(ref.Routes) == 0 {
		p.errorf("route table is empty")
		return p
	}
	for key, series := range ref.Routes {
		if !routeKeyPattern.MatchString(key) {
			p.errorf("route %q: key does not match ORIGIN-DEST", key)
		}
		if series.Len() == 0 {
			p.errorf("route %q: no monthly values", key)
		}
		for m := time.January; m <= time.December; m++ {
			v, ok := series.Value(m)
			if !ok {
				continue
			}
			if v < 0 || v > 100 {
				p.errorf("route %q %s: roughness %.1f out of range [0,100]", key, m, v)
			}
		}
	}
	return p
}

func validateSeasonal(ref *domain.RefData) *phase {
	p := &phase{name: "Seasonal baseline coverage and ranges"}

	for m := time.January; m <= time.December; m++ {
		v, ok := ref.Seasonal.Value(m)
		if !ok {
			p.errorf("seasonal baseline missing %s", m)
			continue
		}
		if v < 0 || v > 100 {
			p.errorf("seasonal %s: roughness %.1f out of range [0,100]", m, v)
		}
	}
	return p
}

func validateAirports(ref *domain.RefData) *phase {
	p := &phase{name: "Airport codes and coordinate bounds"}

	if len(ref.Airports) == 0 {
		p.errorf("airport table is empty")
		return p
	}
	for code, geo := range ref.Airports {
		if !airportCodePattern.MatchString(code) {
			p.errorf("airport %q: code is not three uppercase letters", code)
		}
		if geo.Lat < -90 || geo.Lat > 90 {
			p.errorf("airport %q: latitude %.4f out of range", code, geo.Lat)
		}
		if geo.Lon < -180 || geo.Lon > 180 {
			p.errorf("airport %q: longitude %.4f out of range", code, geo.Lon)
		}
	}
	return p
}

// validateRouteEndpoints cross-checks that every route endpoint has
// coordinates, so wind sampling can run on all bundled routes.
func validateRouteEndpoints(ref *domain.RefData) *phase {
	p := &phase{name: "Route endpoints resolve to coordinates"}

	for key := range ref.Routes {
		parts := strings.SplitN(key, "-", 2)
		if len(parts) != 2 {
			continue
		}
		for _, code := range parts {
			if _, ok := ref.Airports.Coordinates(code); !ok {
				p.errorf("route %q: no coordinates for %q", key, code)
			}
		}
	}
	return p
}
