package rhythm

import (
	"fmt"
	"math"
	"slices"

	"github.com/maruel/natural"
)

// epsilon makes sure font size which lands exactly on the grid still gets
// an additional unit of leading.
const epsilon = 0.001

// Result holds metrics in pixels for a single scale level. Values are
// immutable once computed.
type Result struct {
	Level        int
	FontSize     int
	LineHeight   int
	PaddingTop   int
	MarginBottom int
}

// Compute derives metrics for a level. Heading levels (non zero) receive
// configured header spacing, body text never does.
//
// Margin may become negative when shift exceeds two rhythm units, this is
// left as is.
func Compute(level int, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	return compute(level, cfg, cfg.RhythmUnit())
}

func compute(level int, cfg Config, unit int) (Result, error) {
	factor := math.Pow(cfg.ScaleRatio, float64(level))

	r := Result{Level: level}
	r.FontSize = int(math.Round(cfg.BaseFontSize * factor))
	if r.FontSize < 1 {
		return Result{}, fmt.Errorf("%w: font size for level %d rounds to %dpx", ErrPrecondition, level, r.FontSize)
	}

	units := math.Ceil((float64(r.FontSize) + epsilon) / float64(unit))
	r.LineHeight = int(math.Round(float64(unit) * units))

	shift := int(math.Round((float64(r.LineHeight) - float64(r.FontSize)*cfg.CapHeight) / 2))

	// padding and margin together always take whole rhythm units
	r.PaddingTop = shift
	if shift > unit {
		r.MarginBottom = 2*unit - shift
	} else {
		r.MarginBottom = unit - shift
	}

	if level != 0 {
		r.PaddingTop += cfg.HeaderSpacing.Before * unit
		r.MarginBottom += cfg.HeaderSpacing.After * unit
	}
	return r, nil
}

// Named is a computed level together with its name (selector).
type Named struct {
	Name string
	Result
}

// Set is the result of a single computation pass: every configured level
// computed against the same rhythm unit.
type Set struct {
	Unit         int
	BaseFontSize float64
	Levels       []Named
}

// ComputeAll computes every level from cfg.Factors. Levels are ordered by
// factor, largest first, names with equal factors in natural order.
func ComputeAll(cfg Config) (Set, error) {
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}
	if len(cfg.Factors) == 0 {
		return Set{}, fmt.Errorf("%w: no levels configured", ErrPrecondition)
	}

	set := Set{
		Unit:         cfg.RhythmUnit(),
		BaseFontSize: cfg.BaseFontSize,
		Levels:       make([]Named, 0, len(cfg.Factors)),
	}
	for name, level := range cfg.Factors {
		r, err := compute(level, cfg, set.Unit)
		if err != nil {
			return Set{}, fmt.Errorf("level %q: %w", name, err)
		}
		set.Levels = append(set.Levels, Named{Name: name, Result: r})
	}
	slices.SortFunc(set.Levels, func(a, b Named) int {
		switch {
		case a.Level != b.Level:
			return b.Level - a.Level
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		}
		return 0
	})
	return set, nil
}

// Headings returns names of all levels with non zero factor in set order.
func (s Set) Headings() []string {
	var names []string
	for _, l := range s.Levels {
		if l.Level != 0 {
			names = append(names, l.Name)
		}
	}
	return names
}

// Lookup returns computed level by name.
func (s Set) Lookup(name string) (Named, bool) {
	for _, l := range s.Levels {
		if l.Name == name {
			return l, true
		}
	}
	return Named{}, false
}
