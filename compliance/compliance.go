package compliance

import (
	"fmt"
	"strings"
)

// Mode selects how aggressively text input is rejected.
//
// Strict mode accepts only the canonical literal form.
// Permissive mode tolerates cosmetic variation and normalizes it away, but
// still rejects anything ambiguous.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a flag value to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("unknown compliance mode %q (want permissive|strict)", s)
	}
}
