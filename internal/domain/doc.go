// Package domain implements the Turbulence Comfort Index (TCI): a 0-100
// ride-comfort score for a flight, blended from aircraft-type comfort,
// historical route/seasonal roughness, and an optional live jet-stream
// penalty.
//
// # Scoring
//
// Three component scores feed a weighted blend:
//
//	aircraft: table score for the normalized type code, default 60.
//	route:    100 - roughness, where roughness comes from the route table
//	          for the flight month, falling back to the seasonal baseline,
//	          falling back to 25.
//	realtime: 100 when no live signal exists; otherwise resolved from an
//	          AdvisorySignal (-25 for an active advisory, -3 per pilot
//	          report capped at -20) or a PenaltySignal (100 - points).
//
// Weights are (0.40, 0.60, 0) without a live signal and
// (0.40, 0.45, 0.15) with one. The blended value is rounded and clamped
// to [0,100]. Every component is clamped independently and kept in the
// breakdown for display, including components outside the blend.
//
// # Classification
//
// Two classification schemes coexist on purpose and serve different call
// sites:
//
//	Bucket (operational):  >=80 Smooth | >=60 Moderate | >=40 Turbulent | Avoid
//	HumanLabel (display):  >=85 Glass-Smooth | >=70 Mostly Smooth | >=55 Choppy | Rough
//
// # Reference data
//
// Tables are read-only process-wide state, loaded once at startup by
// internal/refdata and injected into the Scorer. Missing entries are
// never errors; every lookup has a documented default. Month entries
// arrive in two historical encodings (12-element array, Jan first, or an
// object keyed "jan".."dec") and normalize into [MonthSeries].
//
// # Realtime enrichment
//
// The jet-stream path samples upper-air wind at the great-circle midpoint
// of the route (a proxy for conditions along the whole path), converts
// the u/v components to knots, and maps speed to a point penalty:
//
//	>=120kt 15 | >=100kt 12 | >=80kt 8 | >=60kt 4 | >=40kt 2 | else 0
//
// Sampling is best-effort with a single bounded attempt and no retries.
// Any failure degrades silently to baseline scoring; scoring is always
// valid without it.
//
// # Confidence
//
// ComputeConfidence encodes the forecast-horizon policy: within 3 days
// High regardless of live data, 4-10 days Medium only with a live
// signal, beyond 10 days never better than Low.
package domain
