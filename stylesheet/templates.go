package stylesheet

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"syncope/common"
	"syncope/config"
	"syncope/misc"
	"syncope/rhythm"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context        string
	App            string
	Version        string
	Font           string
	BaseFontSize   float64
	BaseLineHeight float64
	CapHeight      float64
	Scale          float64
	RhythmUnit     int
	Levels         []string
	Unit           string
	Syntax         string
}

// NewValues collects template variables for a computed set.
func NewValues(set rhythm.Set, cfg rhythm.Config, font string, unit common.OutputUnit, syntax common.OutputSyntax) Values {
	levels := make([]string, 0, len(set.Levels))
	for _, l := range set.Levels {
		levels = append(levels, l.Name)
	}
	return Values{
		App:            misc.GetAppName(),
		Version:        misc.GetVersion(),
		Font:           font,
		BaseFontSize:   cfg.BaseFontSize,
		BaseLineHeight: cfg.BaseLineHeight,
		CapHeight:      cfg.CapHeight,
		Scale:          cfg.ScaleRatio,
		RhythmUnit:     set.Unit,
		Levels:         levels,
		Unit:           unit.String(),
		Syntax:         syntax.String(),
	}
}

// ExpandTemplate expands one of configuration template fields.
func ExpandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()
	funcMap["slug"] = slug.Make

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
