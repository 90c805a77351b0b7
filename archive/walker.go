// Package archive reads resources which may be stored inside zip archives.
// Path to such resource is written as path to archive followed by path inside
// it: "fonts.zip/PT_Serif/PTSerif-Regular.ttf".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// ErrNotFound is returned when archive has no acceptable file under requested
// path.
var ErrNotFound = errors.New("no matching file in archive")

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every file in the archive which name starts with
// prefix. Entries with ".." components or absolute paths are skipped.
func Walk(archive, prefix string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) || f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// Split separates path into existing file and remaining path inside it. When
// p itself is an existing file inner is empty.
func Split(p string) (file, inner string, err error) {
	p = filepath.Clean(p)
	for head := p; ; {
		fi, err := os.Stat(head)
		if err == nil {
			if fi.IsDir() && head != p {
				// directory cannot have tail - it would be simple file
				break
			}
			if !fi.Mode().IsRegular() {
				return "", "", fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(p, head))
			}
			inner = strings.TrimPrefix(strings.TrimPrefix(p, head), string(filepath.Separator))
			return head, filepath.ToSlash(inner), nil
		}
		dir := filepath.Dir(head)
		if dir == head {
			break
		}
		head = dir
	}
	return "", "", fmt.Errorf("%w: %s", fs.ErrNotExist, p)
}

// IsArchive checks whether data starts with zip signature.
func IsArchive(data []byte) bool {
	return filetype.Is(data, "zip")
}

// ReadFile returns content of the file at p, which could be a plain file or
// a path inside zip archive. When p points to an archive (or directory inside
// it) first file accepted by match is returned, file named exactly is always
// accepted. Name of the file actually read
// is returned as well.
func ReadFile(p string, match func(name string) bool) ([]byte, string, error) {
	file, inner, err := Split(p)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, "", err
	}
	if !IsArchive(data) {
		if len(inner) > 0 {
			return nil, "", fmt.Errorf("%s is not an archive, unable to look for %s", file, inner)
		}
		return data, file, nil
	}

	var (
		found []byte
		name  string
	)
	errStop := errors.New("stop")
	err = Walk(file, inner, func(archive string, f *zip.File) error {
		// exact name or any file under directory with that name
		if len(inner) > 0 && f.Name != inner && !strings.HasPrefix(f.Name, strings.TrimSuffix(inner, "/")+"/") {
			return nil
		}
		if match != nil && f.Name != inner && !match(f.Name) {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		if found, err = io.ReadAll(rc); err != nil {
			return err
		}
		name = filepath.Join(archive, filepath.FromSlash(f.Name))
		return errStop
	})
	switch {
	case errors.Is(err, errStop):
		return found, name, nil
	case err != nil:
		return nil, "", fmt.Errorf("unable to read archive %s: %w", file, err)
	}
	return nil, "", fmt.Errorf("%w: %s (%s)", ErrNotFound, file, inner)
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
