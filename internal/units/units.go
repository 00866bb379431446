package units

import (
	"fmt"
	"strconv"
	"strings"
)

// System selects metric or imperial display units. It is passed
// explicitly into every formatting call; nothing here reads global state.
type System int

const (
	Metric System = iota
	Imperial
)

// Conversion constants
const (
	MetersPerKilometer = 1000.0
	MetersPerMile      = 1609.34
	KmPerMile          = 1.60934
)

// ParseSystem maps a configuration string to a System. Anything other
// than "imperial" is treated as metric.
func ParseSystem(s string) System {
	if strings.EqualFold(strings.TrimSpace(s), "imperial") {
		return Imperial
	}
	return Metric
}

// DistanceUnit returns the display suffix for the system.
func (s System) DistanceUnit() string {
	if s == Imperial {
		return "mi"
	}
	return "km"
}

// String implements fmt.Stringer.
func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// FormatDuration renders a number of seconds as "H:MM:SS" when the
// value is at least one hour, "M:SS" otherwise. Fractional seconds are
// truncated, never rounded.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// ParseDurationSeconds parses a formatted duration back into seconds.
// It accepts "H:MM:SS" and "M:SS"; a string without colons is read as a
// raw number of seconds. Returns false when nothing parses.
func ParseDurationSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3:
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		sec, errS := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errH != nil || errM != nil || errS != nil {
			return 0, false
		}
		return float64(h*3600 + m*60 + sec), true
	case 2:
		m, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
		sec, errS := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errM != nil || errS != nil {
			return 0, false
		}
		return float64(m*60 + sec), true
	case 1:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// FormatDistance renders a distance in meters as a two-decimal value in
// the system's unit, suffixed with the unit string (e.g. "5.23 km").
func FormatDistance(meters float64, sys System) string {
	divisor := MetersPerKilometer
	if sys == Imperial {
		divisor = MetersPerMile
	}
	return fmt.Sprintf("%.2f %s", meters/divisor, sys.DistanceUnit())
}

// ParseMeasure extracts the numeric value from a formatted measure such
// as "5.23 km" or "120 m" by stripping non-numeric characters. Returns
// false when no digits remain.
func ParseMeasure(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPace renders seconds-per-distance-unit as "M:SS/km" or "M:SS/mi".
func FormatPace(secondsPerUnit float64, sys System) string {
	if secondsPerUnit < 0 {
		secondsPerUnit = 0
	}
	total := int(secondsPerUnit)
	return fmt.Sprintf("%d:%02d/%s", total/60, total%60, sys.DistanceUnit())
}

// ParsePaceSeconds parses a "M:SS" pace, ignoring any "/unit" suffix,
// into seconds per distance unit.
func ParsePaceSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	m, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
	sec, errS := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errM != nil || errS != nil {
		return 0, false
	}
	return float64(m*60 + sec), true
}

// ParsePaceSecondsPerKm parses a pace string and normalizes it to
// seconds per kilometer using the "/unit" suffix; a "/mi" pace is
// converted, anything else is assumed to already be per kilometer.
func ParsePaceSecondsPerKm(s string) (float64, bool) {
	secs, ok := ParsePaceSeconds(s)
	if !ok {
		return 0, false
	}
	if strings.Contains(strings.ToLower(s), "/mi") {
		secs /= KmPerMile
	}
	return secs, true
}
