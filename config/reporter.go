package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"syncope/misc"
)

const manifestName = "MANIFEST"

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare opens report archive. When destination cannot be created report
// goes to a temporary file, see Name.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	r.file = f
	return r, nil
}

// entry is either a file on disk (path) or data captured in memory.
type entry struct {
	path  string
	abs   string
	stamp time.Time
	data  []byte
}

func (e entry) inMemory() bool {
	return e.data != nil
}

// Report collects what is needed to reproduce a run: configuration, logs,
// fonts and everything produced. Nothing is written until Close.
// NOTE: not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Name returns absolute name of report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be copied into report when it is closed. Files
// are read at that time so logs are complete.
func (r *Report) Store(name, path string) {
	// nil report means debugging was not requested
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.path != path {
		panic(fmt.Sprintf("report entry [%s] already points to %s, refusing %s", name, old.path, path))
	}

	e := entry{path: path, abs: path}
	if p, err := filepath.Abs(path); err == nil {
		e.abs = p
	}
	r.entries[name] = e
}

// StoreData keeps copy of data under name. Same name may be stored several
// times (once per produced stylesheet for example), later copies get time
// stamp suffix.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	e := entry{data: bytes.Clone(data), stamp: time.Now()}
	if e.data == nil {
		e.data = []byte{}
	}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
	}
	r.entries[name] = e
}

// StoreRun records program version, platform and command line.
func (r *Report) StoreRun(args []string) {
	if r == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", misc.GetAppName(), misc.GetVersion(), misc.GetGitHash())
	fmt.Fprintf(&b, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	for i, a := range args {
		fmt.Fprintf(&b, "arg[%d]: %q\n", i, a)
	}
	r.StoreData("run.txt", []byte(b.String()))
}

// Close writes report archive. Missing files are listed in manifest but not
// archived, failures on individual entries do not stop the rest.
func (r *Report) Close() (err error) {
	if r == nil || r.file == nil {
		return nil
	}
	defer func() {
		err = multierr.Append(err, r.file.Close())
	}()

	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names := r.names()
	if err := addToArchive(arc, manifestName, time.Now(), strings.NewReader(r.manifest(names))); err != nil {
		return err
	}
	for _, name := range names {
		err = multierr.Append(err, r.archive(arc, name))
	}
	return err
}

func (r *Report) names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	// versioned copies sort by their stamps
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return names
}

func (r *Report) manifest(names []string) string {
	now := time.Now()

	var b strings.Builder
	for _, name := range names {
		e := r.entries[name]
		stamp, source := e.stamp, e.abs
		if !e.inMemory() {
			if info, err := os.Stat(e.abs); err == nil {
				stamp = info.ModTime()
			} else {
				source += " (missing)"
			}
		} else {
			source = fmt.Sprintf("<%d bytes>", len(e.data))
		}
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\n", stamp.UTC().Format(time.RFC3339), name, source)
	}
	return b.String()
}

func (r *Report) archive(arc *zip.Writer, name string) error {
	e := r.entries[name]
	if e.inMemory() {
		return addToArchive(arc, name, e.stamp, bytes.NewReader(e.data))
	}

	// absent files and anything but regular files are skipped
	info, err := os.Stat(e.abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(e.abs)
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	defer f.Close()
	return addToArchive(arc, name, info.ModTime(), f)
}

func addToArchive(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	return nil
}
