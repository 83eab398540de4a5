package types

import (
	"fmt"
	"regexp"
	"strconv"
)

// durationPattern matches human-readable ranges like "6-9 months".
var durationPattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)\s*months?$`)

// Duration is an estimated duration range in months. Override rules operate
// on this structured form; the display string is produced only at the
// boundary, so repeated transformations never re-parse their own output.
type Duration struct {
	MinMonths int `json:"minMonths"`
	MaxMonths int `json:"maxMonths"`
}

// ParseDuration parses a display string like "6-9 months" into a Duration.
func ParseDuration(s string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return Duration{}, fmt.Errorf("unrecognized duration format: %q", s)
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration lower bound %q: %w", m[1], err)
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration upper bound %q: %w", m[2], err)
	}
	return Duration{MinMonths: lo, MaxMonths: hi}, nil
}

// String formats the duration back into its display form.
func (d Duration) String() string {
	return fmt.Sprintf("%d-%d months", d.MinMonths, d.MaxMonths)
}
