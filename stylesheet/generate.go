// Package stylesheet composes production and preview stylesheets from
// computed rhythm levels.
package stylesheet

import (
	"fmt"
	"strconv"
	"strings"

	"syncope/common"
	"syncope/css"
	"syncope/rhythm"
)

// Options controls production stylesheet composition.
type Options struct {
	Syntax      common.OutputSyntax
	Unit        common.OutputUnit
	Font        string
	BoldHeaders bool
	// Header is banner comment text, empty to omit banner.
	Header string
}

const scssMixin = `/**
 * Sets vertical rhythm for the given level.
 * Usage:
 *
 * 	h1 {
 * 		@include v-rhythm( 4 );
 * 	}
 */
@mixin v-rhythm( $level ) {
	$rhythm: map-get( $v-rhythm-levels, $level );

	font-size: nth( $rhythm, 1 );
	line-height: nth( $rhythm, 2 );
	padding-top: nth( $rhythm, 3 );
	margin-bottom: nth( $rhythm, 4 );
}
`

// number formats value the way it was typed: no trailing zeros, no exponent
// for reasonable magnitudes.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Preamble returns the common part of production stylesheet: banner, base
// font for the document and heading weight reset.
func Preamble(set rhythm.Set, cfg rhythm.Config, opts Options) *css.Stylesheet {
	sheet := &css.Stylesheet{}
	if len(strings.TrimSpace(opts.Header)) > 0 {
		sheet.AddComment(opts.Header)
	}
	sheet.AddRule(css.NewRule("html", "body")).
		Set("font", fmt.Sprintf("%spx/%s %s", number(cfg.BaseFontSize), number(cfg.BaseLineHeight), css.QuoteSingle(opts.Font)))

	if headings := set.Headings(); !opts.BoldHeaders && len(headings) > 0 {
		sheet.AddRule(css.NewRule(headings...)).Set("font-weight", "normal")
	}
	return sheet
}

// Generate produces production stylesheet text in requested syntax. For css
// every level becomes a rule named after it, for scss levels are emitted as a
// map keyed by factor followed by mixin which applies them.
func Generate(set rhythm.Set, cfg rhythm.Config, opts Options) (string, error) {
	if !opts.Syntax.IsValid() {
		return "", fmt.Errorf("unsupported output syntax %q", opts.Syntax)
	}
	if !opts.Unit.IsValid() {
		return "", fmt.Errorf("unsupported output unit %q", opts.Unit)
	}
	if len(set.Levels) == 0 {
		return "", fmt.Errorf("%w: nothing to generate", rhythm.ErrPrecondition)
	}

	var b strings.Builder
	b.WriteString(Preamble(set, cfg, opts).String())

	switch opts.Syntax {
	case common.OutputSyntaxCss:
		for _, l := range set.Levels {
			fmt.Fprintf(&b, "\n%s {%s}\n", l.Name, l.Print(opts.Syntax, opts.Unit, set.BaseFontSize))
		}
	case common.OutputSyntaxScss:
		b.WriteString("\n$v-rhythm-levels: (\n")
		for i, l := range set.Levels {
			// levels with equal factors have equal metrics, map key must be unique
			if i > 0 && set.Levels[i-1].Level == l.Level {
				continue
			}
			fmt.Fprintf(&b, "\t%d: ( %s ),\n", l.Level, l.Print(opts.Syntax, opts.Unit, set.BaseFontSize))
		}
		b.WriteString(");\n\n")
		b.WriteString(scssMixin)
	}
	return b.String(), nil
}
