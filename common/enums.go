// Enums shared between configuration and the rhythm core. Kept in a separate
// package so rhythm does not depend on configuration handling at all.
package common

//go:generate go-enum --marshal --names

// Unit used when printing rhythm metrics.
// ENUM(px, em, rem)
type OutputUnit string

// Relative reports whether values are expressed against a font size rather
// than in absolute pixels.
func (u OutputUnit) Relative() bool {
	return u == OutputUnitEm || u == OutputUnitRem
}

// Syntax of produced stylesheet.
// ENUM(css, scss)
type OutputSyntax string

func (s OutputSyntax) Ext() string {
	switch s {
	case OutputSyntaxCss:
		return ".css"
	case OutputSyntaxScss:
		return ".scss"
	default:
		// this should never happen
		panic("unsupported syntax requested")
	}
}
