// Package fontmetrics extracts typographic metrics needed for rhythm
// computation from TrueType/OpenType font files.
package fontmetrics

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"syncope/archive"
)

var ErrNoCapHeight = errors.New("font does not define cap height")

// Metrics of a font relevant for vertical rhythm.
type Metrics struct {
	Family     string
	UnitsPerEm int
	CapHeight  float64 // cap height to font size ratio
}

// Load parses font data. Cap height comes from OS/2 table when present,
// otherwise it is measured on glyph 'H'.
func Load(data []byte) (Metrics, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return Metrics{}, fmt.Errorf("unable to parse font: %w", err)
	}

	var buf sfnt.Buffer

	m := Metrics{UnitsPerEm: int(f.UnitsPerEm())}
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		m.Family = name
	}

	// measure in font units: ppem equal to units per em
	ppem := fixed.I(m.UnitsPerEm)

	fm, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("unable to get font metrics: %w", err)
	}
	capHeight := fm.CapHeight
	if capHeight <= 0 {
		capHeight = measureGlyph(f, &buf, 'H', ppem)
	}
	if capHeight <= 0 {
		return Metrics{}, ErrNoCapHeight
	}
	m.CapHeight = float64(capHeight) / float64(ppem)
	return m, nil
}

// ErrUnsupported is returned for web font containers sfnt cannot parse.
var ErrUnsupported = errors.New("unsupported font format")

// IsFontFile reports whether name has extension of a font file we could use.
func IsFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// Detect checks font data signature.
func Detect(data []byte) error {
	switch {
	case filetype.Is(data, "ttf"), filetype.Is(data, "otf"):
		return nil
	case filetype.Is(data, "woff"), filetype.Is(data, "woff2"):
		return fmt.Errorf("%w: web font, use TrueType or OpenType file", ErrUnsupported)
	}
	return fmt.Errorf("%w: not a TrueType or OpenType font", ErrUnsupported)
}

// LoadFile reads and parses font file. Path may point inside zip archive, in
// which case first font file found under that path is used.
func LoadFile(path string) (Metrics, error) {
	data, name, err := archive.ReadFile(path, IsFontFile)
	if err != nil {
		return Metrics{}, fmt.Errorf("unable to read font file: %w", err)
	}
	if err := Detect(data); err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", name, err)
	}
	m, err := Load(data)
	if err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// measureGlyph returns height of glyph above baseline or 0 when glyph is
// absent.
func measureGlyph(f *sfnt.Font, buf *sfnt.Buffer, r rune, ppem fixed.Int26_6) fixed.Int26_6 {
	idx, err := f.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return 0
	}
	bounds, _, err := f.GlyphBounds(buf, idx, ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	// y axis points down
	return -bounds.Min.Y
}
