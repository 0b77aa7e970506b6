package yamlsettings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/0xalexb/yamlsettings/merge"
	"github.com/0xalexb/yamlsettings/subpath"
)

// ErrMissingRequired is returned when one or more required files do not exist on disk.
var ErrMissingRequired = errors.New("required settings files do not exist")

// ErrNotMapping is returned when a loaded document, at its declared subpath,
// does not deserialize to a mapping.
var ErrNotMapping = errors.New("settings file must deserialize to a mapping")

// load reads every declared file and produces the merged configuration.
//
// Required files missing from disk fail the load before anything is read.
// Optional absent files are skipped. Every participating document must be a
// mapping at its subpath; offenders are reported together in one error.
func (s *Source) load() (map[string]any, error) {
	var missing []string

	existing := make([]string, 0, len(s.config.Paths))

	for _, path := range s.config.Paths {
		if fileExists(path) {
			existing = append(existing, path)

			continue
		}

		if !s.config.Files[path].Optional {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	if len(existing) == 0 {
		return map[string]any{}, nil
	}

	s.trace("loading files", "paths", existing)

	documents := make([]map[string]any, 0, len(existing))

	var shapeErr error

	for _, path := range existing {
		value, err := s.readDocument(path)
		if err != nil {
			return nil, err
		}

		document, isMapping := value.(map[string]any)
		if !isMapping {
			shapeErr = multierr.Append(shapeErr, shapeError(path, s.config.Files[path].Subpath))

			continue
		}

		documents = append(documents, document)
	}

	if shapeErr != nil {
		return nil, shapeErr
	}

	s.trace("merging documents", "count", len(documents))

	return merge.Merge(documents...), nil
}

// readDocument opens, parses, and subpath-extracts a single file. The file
// handle is held only for the duration of this call.
func (s *Source) readDocument(path string) (any, error) {
	file, err := os.Open(path) // #nosec G304 -- path is caller-declared configuration
	if err != nil {
		return nil, fmt.Errorf("opening settings file %q: %w", path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	value, err := subpath.Extract(file, s.config.Files[path].Subpath)
	if err != nil {
		return nil, fmt.Errorf("settings file %q: %w", path, err)
	}

	return value, nil
}

func shapeError(path, subpathExpr string) error {
	if subpathExpr == "" {
		return fmt.Errorf("%w: %s", ErrNotMapping, path)
	}

	return fmt.Errorf("%w: %s (subpath %q)", ErrNotMapping, path, subpathExpr)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
