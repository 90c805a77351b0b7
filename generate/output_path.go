package generate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"syncope/config"
	"syncope/state"
	"syncope/stylesheet"
)

const (
	stdoutName      = "STDOUT"
	defaultBaseName = "rhythm"
)

var errDestinationExists = errors.New("destination already exists")

// buildOutputPath returns path to write results to or empty string for
// STDOUT. When destination is a directory file name is produced from name
// template.
func buildOutputPath(dst, ext string, values stylesheet.Values, env *state.LocalEnv, log *zap.Logger) (string, error) {
	if len(dst) == 0 || dst == "-" {
		return "", nil
	}

	isDir := strings.HasSuffix(dst, string(os.PathSeparator)) || strings.HasSuffix(dst, "/")
	if fi, err := os.Stat(dst); err == nil {
		isDir = fi.IsDir()
	}
	dst = filepath.Clean(dst)

	out := dst
	if isDir {
		out = filepath.Join(dst, buildFileName(values, env, log)+ext)
	}

	if _, err := os.Stat(out); err == nil && !env.Overwrite {
		return "", fmt.Errorf("%w: %s", errDestinationExists, out)
	}
	return out, nil
}

// buildFileName expands name template, falling back to default name when
// template cannot be used.
func buildFileName(values stylesheet.Values, env *state.LocalEnv, log *zap.Logger) string {
	name, err := stylesheet.ExpandTemplate(config.NameTemplateFieldName, env.Cfg.Output.NameTemplate, values)
	if err != nil {
		log.Warn("Unable to prepare output filename", zap.Error(err))
		return defaultBaseName
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return defaultBaseName
	}
	return config.CleanFileName(name)
}

// writeOutput writes data to file creating directories as necessary or to
// stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if len(path) == 0 {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write to %s: %w", stdoutName, err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file '%s': %w", path, err)
	}
	return nil
}

func displayName(path string) string {
	if len(path) == 0 {
		return stdoutName
	}
	return path
}
