package stylesheet

import (
	"testing"

	"syncope/css"
)

func declaration(t *testing.T, sheet *css.Stylesheet, selector, property string) string {
	t.Helper()
	rules := sheet.RulesBySelector(selector)
	if len(rules) != 1 {
		t.Fatalf("expected single rule %q, got %d", selector, len(rules))
	}
	v, ok := rules[0].Get(property)
	if !ok {
		t.Fatalf("rule %q has no %s", selector, property)
	}
	return v
}

func TestSandbox(t *testing.T) {
	cfg := defaultConfig()
	set := computeSet(t, cfg)

	sheet := Sandbox(set, cfg, SandboxOptions{
		Font:        "Helvetica",
		BoldHeaders: true,
		TextWidth:   40,
		ShowGrid:    true,
	})

	tests := []struct {
		selector, property, want string
	}{
		{".sandbox", "font", "16px/1.6 'Helvetica'"},
		{".sandbox", "padding", "1.6em"},
		{".sandbox", "background", gridBackground},
		{".sandbox", "max-width", "40em"},
		{".sandbox", "background-size", "100% 26px"},
		{".sandbox h1", "font-size", "81px"},
		{".sandbox h1", "line-height", "104px"},
		{".sandbox h1", "padding-top", "24px"},
		{".sandbox h1", "margin-bottom", "2px"},
		{".sandbox p", "line-height", "26px"},
		{".sandbox h1, .sandbox h2, .sandbox h3, .sandbox h4", "font-weight", "bold"},
	}
	for _, tt := range tests {
		if got := declaration(t, sheet, tt.selector, tt.property); got != tt.want {
			t.Errorf("%s { %s } = %q, want %q", tt.selector, tt.property, got, tt.want)
		}
	}
}

func TestSandbox_NoGridCustomScope(t *testing.T) {
	cfg := defaultConfig()
	set := computeSet(t, cfg)

	sheet := Sandbox(set, cfg, SandboxOptions{
		Scope:     "#preview",
		Font:      "Georgia",
		TextWidth: 32.5,
	})

	if got := declaration(t, sheet, "#preview", "background"); got != "transparent" {
		t.Errorf("background = %q, want transparent", got)
	}
	if got := declaration(t, sheet, "#preview", "max-width"); got != "32.5em" {
		t.Errorf("max-width = %q, want 32.5em", got)
	}
	if got := declaration(t, sheet, "#preview h1, #preview h2, #preview h3, #preview h4", "font-weight"); got != "normal" {
		t.Errorf("font-weight = %q, want normal", got)
	}
	if len(sheet.RulesBySelector(".sandbox")) != 0 {
		t.Error("default scope must not be used")
	}
}
