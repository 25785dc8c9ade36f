package camfx

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned for unknown orchestration modes.
var ErrInvalidMode = errors.New("camfx: invalid mode")

// Mode selects how the per-camera pipeline is assembled. It is chosen once
// before the simulation starts and applies to every camera.
type Mode uint8

const (
	// ModeFull runs every effect step in the fixed order.
	ModeFull Mode = iota

	// ModeRandomSalt runs only the probability-gated salt step. Params.Pepper
	// is ignored in this mode; the gated pepper operator is reachable only
	// through RandomPepper.
	ModeRandomSalt

	// ModeRandomMosaic runs only the probability-gated mosaic step.
	ModeRandomMosaic

	modeCount
)

var modeNames = [modeCount]string{
	ModeFull:         "full",
	ModeRandomSalt:   "random-salt",
	ModeRandomMosaic: "random-mosaic",
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name with the same leniency as ParseFilterKind:
// "random-salt", "Random_Salt" and "randomsalt" are equivalent. The empty
// string is ModeFull.
func ParseMode(s string) (Mode, error) {
	key := normalizeName(s)
	if key == "" {
		return ModeFull, nil
	}
	for m, name := range modeNames {
		if key == normalizeName(name) {
			return Mode(m), nil
		}
	}
	return ModeFull, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
