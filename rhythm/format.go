package rhythm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"syncope/common"
)

// significant is the number of significant digits for relative units.
const significant = 3

// UnitRhythm is a Result converted to a particular unit, every value already
// carries unit suffix.
type UnitRhythm struct {
	Unit         common.OutputUnit
	FontSize     string
	LineHeight   string
	PaddingTop   string
	MarginBottom string
}

// ToUnit converts metrics to requested unit. Pixels are printed as is. For em
// and rem font size is relative to base font size while the rest of metrics
// are relative to the level own font size (em context of the element).
// Relative values are rounded to 3 significant digits for display only.
func ToUnit(r Result, unit common.OutputUnit, baseFontSize float64) UnitRhythm {
	u := UnitRhythm{Unit: unit}
	if unit == common.OutputUnitPx {
		px := func(v int) string { return strconv.Itoa(v) + unit.String() }
		u.FontSize = px(r.FontSize)
		u.LineHeight = px(r.LineHeight)
		u.PaddingTop = px(r.PaddingTop)
		u.MarginBottom = px(r.MarginBottom)
		return u
	}

	rel := func(v int, context float64) string {
		return toPrecision(float64(v)/context, significant) + unit.String()
	}
	fs := float64(r.FontSize)
	u.FontSize = rel(r.FontSize, baseFontSize)
	u.LineHeight = rel(r.LineHeight, fs)
	u.PaddingTop = rel(r.PaddingTop, fs)
	u.MarginBottom = rel(r.MarginBottom, fs)
	return u
}

// Print serializes converted metrics. For css syntax result is a body of a
// rule (declarations only, to be put between braces), for scss it is a comma
// separated tuple suitable as an entry of a Sass map.
func Print(u UnitRhythm, syntax common.OutputSyntax) string {
	if syntax == common.OutputSyntaxCss {
		return fmt.Sprintf("\n\tfont-size: %s;\n\tline-height: %s;\n\tpadding-top: %s;\n\tmargin-bottom: %s;\n",
			u.FontSize, u.LineHeight, u.PaddingTop, u.MarginBottom)
	}
	return strings.Join([]string{u.FontSize, u.LineHeight, u.PaddingTop, u.MarginBottom}, ", ")
}

// Print is a shortcut for ToUnit followed by Print.
func (r Result) Print(syntax common.OutputSyntax, unit common.OutputUnit, baseFontSize float64) string {
	return Print(ToUnit(r, unit, baseFontSize), syntax)
}

// toPrecision formats x with p significant digits keeping trailing zeros.
// Exponential notation is used when decimal exponent is below -6 or not less
// than p, so 1.625 becomes "1.63", 1 becomes "1.00" and 1234 becomes "1.23e+3".
func toPrecision(x float64, p int) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		if x == 0 {
			return "0." + strings.Repeat("0", p-1)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	var sign string
	if x < 0 {
		sign, x = "-", -x
	}

	e := int(math.Floor(math.Log10(x)))
	n := roundScaled(x, p-1-e)
	// correct for Log10 imprecision and for rounding overflow (9.995 -> 10.0)
	switch lo, hi := math.Pow10(p-1), math.Pow10(p); {
	case n < lo:
		e--
		n = roundScaled(x, p-1-e)
	case n >= hi:
		e++
		n = roundScaled(x, p-1-e)
	}
	digits := strconv.FormatInt(int64(n), 10)

	switch {
	case e < -6 || e >= p:
		mantissa := digits[:1]
		if p > 1 {
			mantissa += "." + digits[1:]
		}
		exp := "+" + strconv.Itoa(e)
		if e < 0 {
			exp = strconv.Itoa(e)
		}
		return sign + mantissa + "e" + exp
	case e == p-1:
		return sign + digits
	case e >= 0:
		return sign + digits[:e+1] + "." + digits[e+1:]
	default:
		return sign + "0." + strings.Repeat("0", -e-1) + digits
	}
}

func roundScaled(x float64, k int) float64 {
	if k >= 0 {
		return math.Round(x * math.Pow10(k))
	}
	return math.Round(x / math.Pow10(-k))
}
