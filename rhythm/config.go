// Package rhythm computes vertical rhythm metrics for text levels and formats
// them in requested units.
//
// All pixel values are integers snapped to a grid which step (rhythm unit) is
// base font size multiplied by base line height. Rounding everywhere is
// math.Round, that is halves are rounded away from zero.
package rhythm

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ErrPrecondition is wrapped by every error produced when configuration
// cannot be used for computation.
var ErrPrecondition = errors.New("rhythm precondition violated")

// HeaderSpacing is additional spacing in whole rhythm units added to heading
// levels only.
type HeaderSpacing struct {
	Before int
	After  int
}

// Config is a snapshot of typographic settings. It is passed by value and
// never modified by this package.
type Config struct {
	BaseFontSize   float64 // px
	BaseLineHeight float64 // unitless multiplier
	CapHeight      float64 // cap height to font size ratio, (0,1)
	ScaleRatio     float64 // geometric ratio between successive levels
	Factors        map[string]int
	HeaderSpacing  HeaderSpacing
}

// DefaultFactors returns level exponents for h1-h4 and paragraph text.
func DefaultFactors() map[string]int {
	return map[string]int{
		"h1": 4,
		"h2": 3,
		"h3": 2,
		"h4": 1,
		"p":  0,
	}
}

// RhythmUnit returns grid step in pixels. It is derived from current field
// values on every call so it cannot get out of sync with them.
func (c Config) RhythmUnit() int {
	return int(math.Round(c.BaseFontSize * c.BaseLineHeight))
}

// Validate checks that configuration can be used for computation. All
// problems are reported at once.
func (c Config) Validate() (err error) {
	positive := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s must be positive finite number, got %v", ErrPrecondition, name, v))
		}
	}
	positive("base font size", c.BaseFontSize)
	positive("base line height", c.BaseLineHeight)
	positive("scale ratio", c.ScaleRatio)

	if math.IsNaN(c.CapHeight) || c.CapHeight <= 0 || c.CapHeight >= 1 {
		err = multierr.Append(err, fmt.Errorf("%w: cap height must be in (0,1), got %v", ErrPrecondition, c.CapHeight))
	}
	if err == nil && c.RhythmUnit() < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: rhythm unit rounds to %dpx (%vpx x %v)", ErrPrecondition, c.RhythmUnit(), c.BaseFontSize, c.BaseLineHeight))
	}
	if c.HeaderSpacing.Before < 0 || c.HeaderSpacing.After < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: header spacing cannot be negative, got before=%d after=%d",
			ErrPrecondition, c.HeaderSpacing.Before, c.HeaderSpacing.After))
	}
	return err
}
