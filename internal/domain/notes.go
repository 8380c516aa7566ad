package domain

import "strings"

// familyNotes maps aircraft families to a short passenger-facing note on
// typical ride quality.
var familyNotes = map[string]string{
	"A350": "A350 airframe dampens vibration well; one of the smoothest long-haul aircraft.",
	"B787": "787 reduces felt bumpiness and cabin fatigue on long flights.",
	"B777": "Heavy airframe smooths bumps, though not as soft as A350/787.",
	"A330": "Generally stable ride; less wing flex than newer designs.",
	"A340": "Stable wide-body ride; older damping tech but balanced.",
	"A320": "Narrow-body; bumps can feel more noticeable on longer segments.",
	"B737": "Narrow-body; bumps can feel more noticeable on longer segments.",
	"B767": "Older wide-body; typically stable but less refined than newer models.",
	"B757": "Narrow-body with powerful wings; can feel chop on long segments.",
	"E190": "Regional jet; lighter airframe tends to transmit bumps more.",
}

const neutralNote = "Ride quality varies by airframe and loading; newer wide-bodies tend to feel smoother."

// familyPrefixes resolves common ICAO variant codes to their family,
// e.g. "A35K" -> "A350", "B78X" -> "B787".
var familyPrefixes = []struct {
	prefix string
	family string
}{
	{"A35", "A350"},
	{"B78", "B787"},
	{"B77", "B777"},
	{"A33", "A330"},
	{"A34", "A340"},
	{"A32", "A320"},
	{"B73", "B737"},
	{"B76", "B767"},
	{"B75", "B757"},
	{"E19", "E190"},
	{"E90", "E190"},
}

func aircraftFamily(code string) string {
	s := NormalizeAircraftType(code)
	for _, fp := range familyPrefixes {
		if strings.HasPrefix(s, fp.prefix) {
			return fp.family
		}
	}
	if _, ok := familyNotes[s]; ok {
		return s
	}
	return ""
}

// AircraftNote returns a short passenger-facing note for an aircraft type,
// falling back to a neutral statement for unrecognized families.
func AircraftNote(code string) string {
	if fam := aircraftFamily(code); fam != "" {
		return familyNotes[fam]
	}
	return neutralNote
}
