package debug

import (
	"syncope/common"
	"syncope/rhythm"
)

// DumpLevels returns tree of computed levels. Metrics are in pixels followed
// by their value in requested unit when it is relative.
func DumpLevels(set rhythm.Set, unit common.OutputUnit) string {
	tw := NewTreeWriter()
	tw.Line(0, "rhythm unit %dpx, base font size %gpx, %d levels", set.Unit, set.BaseFontSize, len(set.Levels))
	for _, l := range set.Levels {
		tw.Line(1, "%s (factor %d)", l.Name, l.Level)

		u := rhythm.ToUnit(l.Result, unit, set.BaseFontSize)
		metrics := []struct {
			name string
			px   int
			rel  string
		}{
			{"font-size", l.FontSize, u.FontSize},
			{"line-height", l.LineHeight, u.LineHeight},
			{"padding-top", l.PaddingTop, u.PaddingTop},
			{"margin-bottom", l.MarginBottom, u.MarginBottom},
		}
		for _, m := range metrics {
			if unit.Relative() {
				tw.Line(2, "%s: %dpx (%s)", m.name, m.px, m.rel)
			} else {
				tw.Line(2, "%s: %dpx", m.name, m.px)
			}
		}
		tw.Field(2, "grid units", (l.LineHeight+l.PaddingTop+l.MarginBottom)/set.Unit)
	}
	return tw.String()
}
