package camfx

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/k38-suzuki/camfx/internal/filter"
)

// ErrUnknownFilter is returned when a filter name cannot be parsed.
var ErrUnknownFilter = errors.New("camfx: unknown filter")

// FilterKind selects the spatial filter applied to a frame.
type FilterKind uint8

const (
	// FilterNone applies no spatial filter.
	FilterNone FilterKind = iota
	// FilterGaussian3x3 smooths with a 3x3 Gaussian kernel.
	FilterGaussian3x3
	// FilterGaussian5x5 smooths with a 5x5 Gaussian kernel.
	FilterGaussian5x5
	// FilterSobel replaces the image with its Sobel edge magnitude.
	FilterSobel
	// FilterPrewitt replaces the image with its Prewitt edge magnitude.
	FilterPrewitt

	filterKindCount
)

var filterNames = [filterKindCount]string{
	FilterNone:        "none",
	FilterGaussian3x3: "gaussian3x3",
	FilterGaussian5x5: "gaussian5x5",
	FilterSobel:       "sobel",
	FilterPrewitt:     "prewitt",
}

var filterKinds = [filterKindCount]filter.Kind{
	FilterNone:        filter.None,
	FilterGaussian3x3: filter.Gaussian3x3,
	FilterGaussian5x5: filter.Gaussian5x5,
	FilterSobel:       filter.Sobel,
	FilterPrewitt:     filter.Prewitt,
}

// IsValid reports whether k is a known filter.
func (k FilterKind) IsValid() bool {
	return k < filterKindCount
}

// String returns the canonical lower-case name of the filter.
func (k FilterKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("FilterKind(%d)", uint8(k))
	}
	return filterNames[k]
}

func (k FilterKind) kind() filter.Kind {
	if !k.IsValid() {
		return filter.None
	}
	return filterKinds[k]
}

// ParseFilterKind parses a filter name. Matching ignores case, surrounding
// space, and '-', '_' or space separators, so "Gaussian_3x3" and
// "GAUSSIAN 3X3" both parse. The empty string is FilterNone.
func ParseFilterKind(s string) (FilterKind, error) {
	key := normalizeName(s)
	if key == "" {
		return FilterNone, nil
	}
	for k, name := range filterNames {
		if key == name {
			return FilterKind(k), nil
		}
	}
	return FilterNone, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k FilterKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FilterKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func normalizeName(s string) string {
	// a Caser is stateful, so each call gets its own
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
