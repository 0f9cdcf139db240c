package model

import (
	"fmt"
	"strings"
)

// Mode selects how the monopoly quantity is obtained.
// Keep these values stable; they appear in YAML configs and API requests.
type Mode string

const (
	// ModeOptimal sets MR = MC.
	ModeOptimal Mode = "optimal"
	// ModeChosen takes the monopoly quantity from the user.
	ModeChosen Mode = "chosen"
)

// ParseMode accepts the stable names case-insensitively; empty means optimal.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeOptimal:
		return ModeOptimal, nil
	case ModeChosen:
		return ModeChosen, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeOptimal, ModeChosen)
	}
}
