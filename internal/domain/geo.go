package domain

import "math"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Midpoint computes the great-circle midpoint between two points using the
// standard spherical formula, rounded to 3 decimal places (~110m). The
// midpoint is used as the sampling location for upper-air wind along a
// route.
func Midpoint(a, b Geo) Geo {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	dlon := radians(b.Lon) - lon1

	bx := math.Cos(lat2) * math.Cos(dlon)
	by := math.Cos(lat2) * math.Sin(dlon)

	lat3 := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lon3 := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Geo{
		Lat: round3(degrees(lat3)),
		Lon: round3(normalizeLon(degrees(lon3))),
	}
}

// normalizeLon wraps a longitude in degrees into [-180, 180).
func normalizeLon(deg float64) float64 {
	return math.Mod(deg+540, 360) - 180
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
