package css

import (
	"fmt"
	"io"
	"strings"
)

// QuoteSingle returns s in single quotes escaped per CSS syntax: \' and \\.
func QuoteSingle(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `'\`) {
		return "'" + s + "'"
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule represents a single CSS rule. Declarations keep insertion order since
// for rhythm rules order carries meaning for a reader.
type Rule struct {
	Selectors    []string
	Declarations []Declaration
}

// NewRule creates empty rule for the selector list.
func NewRule(selectors ...string) *Rule {
	return &Rule{Selectors: selectors}
}

// Set adds declaration or replaces value of existing one in place.
func (r *Rule) Set(property, value string) *Rule {
	for i := range r.Declarations {
		if r.Declarations[i].Property == property {
			r.Declarations[i].Value = value
			return r
		}
	}
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
	return r
}

// Get returns the value for a property, or empty string if not found.
func (r *Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Selector returns selector list as written.
func (r *Rule) Selector() string {
	return strings.Join(r.Selectors, ", ")
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or Comment is non-nil.
type StylesheetItem struct {
	Rule    *Rule
	Comment *string
}

// Stylesheet is an ordered list of rules and comments.
type Stylesheet struct {
	Items []StylesheetItem
}

// AddRule appends rule and returns it for chaining.
func (s *Stylesheet) AddRule(r *Rule) *Rule {
	s.Items = append(s.Items, StylesheetItem{Rule: r})
	return r
}

// AddComment appends block comment, text may be multiline.
func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, StylesheetItem{Comment: &text})
}

// RulesBySelector returns all rules which selector list is exactly selector.
func (s *Stylesheet) RulesBySelector(selector string) []*Rule {
	var matches []*Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector() == selector {
			matches = append(matches, item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = writeComment(w, *item.Comment)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector())
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "\t%s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeComment writes doc-block style comment.
func writeComment(w io.Writer, text string) (int, error) {
	var total int
	n, err := fmt.Fprint(w, "/**\n")
	total += n
	if err != nil {
		return total, err
	}
	for line := range strings.Lines(strings.TrimRight(text, "\n")) {
		line = strings.TrimRight(strings.ReplaceAll(line, "*/", "* /"), "\n")
		if line == "" {
			n, err = fmt.Fprint(w, " *\n")
		} else {
			n, err = fmt.Fprintf(w, " * %s\n", line)
		}
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, " */\n")
	total += n
	return total, err
}
