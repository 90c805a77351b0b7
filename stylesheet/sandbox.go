package stylesheet

import (
	"fmt"

	"syncope/common"
	"syncope/css"
	"syncope/rhythm"
)

const (
	DefaultScope = ".sandbox"

	gridBackground = "linear-gradient( to bottom, #fff, #fff 98%, rgba( 32,160,255,1 ) 100% )"
)

// SandboxOptions controls preview stylesheet.
type SandboxOptions struct {
	// Scope is selector of preview container, DefaultScope when empty.
	Scope       string
	Font        string
	BoldHeaders bool
	TextWidth   float64 // em
	ShowGrid    bool
}

// Sandbox produces stylesheet for preview page. Metrics are always in pixels
// and baseline grid is drawn with background gradient repeated every rhythm
// unit.
func Sandbox(set rhythm.Set, cfg rhythm.Config, opts SandboxOptions) *css.Stylesheet {
	scope := opts.Scope
	if len(scope) == 0 {
		scope = DefaultScope
	}

	background := "transparent"
	if opts.ShowGrid {
		background = gridBackground
	}

	sheet := &css.Stylesheet{}
	sheet.AddRule(css.NewRule(scope)).
		Set("font", fmt.Sprintf("%spx/%s %s", number(cfg.BaseFontSize), number(cfg.BaseLineHeight), css.QuoteSingle(opts.Font))).
		Set("padding", number(cfg.BaseLineHeight)+"em").
		Set("background", background).
		Set("max-width", number(opts.TextWidth)+"em").
		Set("background-size", fmt.Sprintf("100%% %dpx", set.Unit))

	for _, l := range set.Levels {
		u := rhythm.ToUnit(l.Result, common.OutputUnitPx, set.BaseFontSize)
		sheet.AddRule(css.NewRule(scope+" "+l.Name)).
			Set("font-size", u.FontSize).
			Set("line-height", u.LineHeight).
			Set("padding-top", u.PaddingTop).
			Set("margin-bottom", u.MarginBottom)
	}

	if headings := set.Headings(); len(headings) > 0 {
		selectors := make([]string, 0, len(headings))
		for _, h := range headings {
			selectors = append(selectors, scope+" "+h)
		}
		weight := "normal"
		if opts.BoldHeaders {
			weight = "bold"
		}
		sheet.AddRule(css.NewRule(selectors...)).Set("font-weight", weight)
	}
	return sheet
}
