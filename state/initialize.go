package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"syncope/archive"
	"syncope/config"
	"syncope/fontmetrics"
	"syncope/rhythm"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// LoadFont reads metrics from font file and remembers them. Measured cap
// height and family name take precedence over configured ones.
func (e *LocalEnv) LoadFont(path string) error {
	if found, ok := lookupFont(path, config.FontDirs()); ok {
		path = found
	}
	m, err := fontmetrics.LoadFile(path)
	if err != nil {
		return fmt.Errorf("unable to use font file: %w", err)
	}
	e.Font = &m
	if file, _, err := archive.Split(path); err == nil {
		e.Rpt.Store("font/"+filepath.Base(file), file)
	}
	if e.Log != nil {
		e.Log.Debug("Font metrics loaded",
			zap.String("file", path),
			zap.String("family", m.Family),
			zap.Int("upem", m.UnitsPerEm),
			zap.Float64("cap-height", m.CapHeight))
	}
	return nil
}

// Typography returns rhythm settings for computation with font metrics applied.
func (e *LocalEnv) Typography() rhythm.Config {
	cfg := e.Cfg.Typography()
	if e.Font != nil {
		cfg.CapHeight = e.Font.CapHeight
	}
	return cfg
}

// FontFamily returns font family to be used in produced stylesheets.
func (e *LocalEnv) FontFamily() string {
	if e.Font != nil && len(e.Font.Family) > 0 {
		return e.Font.Family
	}
	return e.Cfg.Font.Family
}

// lookupFont resolves bare font file name which does not exist in current
// directory by searching installed font directories. Names with directory
// part are never searched.
func lookupFont(name string, dirs []string) (string, bool) {
	if filepath.Base(name) != name {
		return "", false
	}
	if _, err := os.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		return "", false
	}

	var found string
	for _, dir := range dirs {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error { //nolint:errcheck
			if err != nil {
				// unreadable directories are skipped
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), name) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}
