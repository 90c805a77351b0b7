package generate

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"syncope/stylesheet"
)

func TestBuildOutputPath(t *testing.T) {
	_, env := setupTestEnv(t)
	log := zaptest.NewLogger(t)
	values := stylesheet.Values{Font: "PT Serif", BaseFontSize: 18, Scale: 1.25}

	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.css")
	if err := os.WriteFile(existing, []byte("p {}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		dst       string
		overwrite bool
		want      string
		wantErr   bool
	}{
		{"stdout", "", false, "", false},
		{"dash is stdout", "-", false, "", false},
		{"existing directory", dir, false, filepath.Join(dir, "pt-serif-18-1_25.css"), false},
		{"new directory", filepath.Join(dir, "new") + string(os.PathSeparator), false, filepath.Join(dir, "new", "pt-serif-18-1_25.css"), false},
		{"new file", filepath.Join(dir, "site.css"), false, filepath.Join(dir, "site.css"), false},
		{"existing file", existing, false, "", true},
		{"existing file overwrite", existing, true, existing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.Overwrite = tt.overwrite
			got, err := buildOutputPath(tt.dst, ".css", values, env, log)
			if (err != nil) != tt.wantErr {
				t.Fatalf("buildOutputPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFileName(t *testing.T) {
	_, env := setupTestEnv(t)
	log := zaptest.NewLogger(t)
	values := stylesheet.Values{Font: "Helvetica", BaseFontSize: 16, Scale: 1.5}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"default", env.Cfg.Output.NameTemplate, "helvetica-16-1_5"},
		{"separators removed", "{{ .Font }}/{{ .BaseFontSize }}", "Helvetica16"},
		{"empty expansion", "{{ if false }}x{{ end }}", defaultBaseName},
		{"broken template", "{{ .Font ", defaultBaseName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.Cfg.Output.NameTemplate = tt.template
			if got := buildFileName(values, env, log); got != tt.want {
				t.Errorf("buildFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.css")
	if err := writeOutput(path, []byte("p {}"), nil); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "p {}" {
		t.Errorf("file content = %q, err = %v", data, err)
	}
	if displayName("") != stdoutName || displayName(path) != path {
		t.Error("unexpected display names")
	}
}
