// Package preview builds standalone XHTML page showing computed rhythm on
// sample content over the baseline grid.
package preview

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/language"

	"syncope/css"
	"syncope/rhythm"
	"syncope/stylesheet"
)

// Options controls preview page content.
type Options struct {
	Title  string
	Lang   language.Tag
	Sample string
	// Scope is selector of container used by sandbox stylesheet.
	Scope string
}

// simple selectors we know how to turn into elements: tag, .class or tag.class
var simpleSelector = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9-]*)?(?:\.([a-zA-Z_][a-zA-Z0-9_-]*))?$`)

// Page returns XHTML document with sandbox stylesheet embedded and a sample
// element for every level of the set. Levels which selectors cannot be
// represented by a single element are skipped and returned.
func Page(sheet *css.Stylesheet, set rhythm.Set, opts Options) (*etree.Document, []string) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE html")

	lang := opts.Lang
	if lang == language.Und {
		lang = language.English
	}

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	html.CreateAttr("lang", lang.String())
	html.CreateAttr("xml:lang", lang.String())

	head := html.CreateElement("head")

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	title := head.CreateElement("title")
	title.SetText(opts.Title)

	style := head.CreateElement("style")
	style.CreateAttr("type", "text/css")
	style.CreateCData("\n" + sheet.String())

	body := html.CreateElement("body")
	container := createScoped(body, opts.Scope)

	var skipped []string
	for _, l := range set.Levels {
		el := createFor(container, l.Name)
		if el == nil {
			skipped = append(skipped, l.Name)
			continue
		}
		if l.Level == 0 {
			el.SetText(opts.Sample)
		} else {
			el.SetText(fmt.Sprintf("%s: %dpx on %dpx", l.Name, l.FontSize, l.LineHeight))
		}
	}
	return doc, skipped
}

// createScoped creates container element matching sandbox scope selector.
func createScoped(parent *etree.Element, scope string) *etree.Element {
	if len(scope) == 0 {
		scope = stylesheet.DefaultScope
	}
	div := parent.CreateElement("div")
	switch {
	case strings.HasPrefix(scope, "#"):
		div.CreateAttr("id", scope[1:])
	case strings.HasPrefix(scope, "."):
		div.CreateAttr("class", scope[1:])
	default:
		div.CreateAttr("class", scope)
	}
	return div
}

func createFor(parent *etree.Element, selector string) *etree.Element {
	m := simpleSelector.FindStringSubmatch(selector)
	if m == nil || len(selector) == 0 {
		return nil
	}
	tag := m[1]
	if len(tag) == 0 {
		tag = "div"
	}
	el := parent.CreateElement(strings.ToLower(tag))
	if len(m[2]) > 0 {
		el.CreateAttr("class", m[2])
	}
	return el
}

// Render serializes page with indentation.
func Render(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
