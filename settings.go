package yamlsettings

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoFiles is returned when a declaration names no settings files.
var ErrNoFiles = errors.New("no settings files declared")

// ErrInvalidFiles is returned when the files declaration has an unsupported shape.
var ErrInvalidFiles = errors.New("files must be a path, a list of paths, or a mapping of path to file spec")

// FileSpec holds per-file loading options.
// The zero value declares a required file loaded at its document root.
type FileSpec struct {
	// Optional marks a file that may be absent from disk. Absent optional
	// files are silently skipped; absent required files fail the load.
	Optional bool
	// Subpath selects a nested value within the parsed document before the
	// merge. See package subpath for the expression syntax. Empty means the
	// whole document.
	Subpath string
}

// File pairs a path with its FileSpec. A []File declaration is the only
// shape that both carries per-file options and preserves declaration order.
type File struct {
	Path string
	Spec FileSpec
}

// Declaration is the raw, caller-facing declaration of a settings source.
// Two declarations (an explicit override and a settings-block default) are
// combined field by field with Resolve before a Source is constructed.
type Declaration struct {
	// Files declares which documents to load, in ascending priority order
	// (the last file wins on leaf-level conflicts). Accepted shapes:
	// string, []string, []File, map[string]FileSpec. The mapping shape has
	// no inherent order; its paths are sorted lexically. Use []File when
	// the merge order matters.
	Files any
	// Reload forces every read to recompute from disk. Nil means unset.
	Reload *bool
	// Optional sets the default requiredness for files declared without a
	// FileSpec. Nil means unset; the default is required.
	Optional *bool
}

// Config is a resolved declaration, ready to construct a Source.
type Config struct {
	// Paths in ascending priority order.
	Paths []string
	// Files maps each path to its resolved FileSpec.
	Files map[string]FileSpec
	// Reload recomputes the merged configuration on every read.
	Reload bool
}

// Resolve combines an explicit override declaration with a settings-block
// base declaration into a Config. For each field the override wins when set,
// then the base, then the default (reload off, files required). A resolved
// declaration must name at least one file.
func Resolve(override, base Declaration) (Config, error) {
	reload := false

	if base.Reload != nil {
		reload = *base.Reload
	}

	if override.Reload != nil {
		reload = *override.Reload
	}

	optional := false

	if base.Optional != nil {
		optional = *base.Optional
	}

	if override.Optional != nil {
		optional = *override.Optional
	}

	files := base.Files
	if override.Files != nil {
		files = override.Files
	}

	paths, specs, err := normalizeFiles(files, optional)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Paths:  paths,
		Files:  specs,
		Reload: reload,
	}, nil
}

// normalizeFiles expands a files declaration into an ordered list of unique
// paths plus their specs. Paths declared without a spec get the default
// requiredness and no subpath.
func normalizeFiles(files any, optional bool) ([]string, map[string]FileSpec, error) {
	switch value := files.(type) {
	case nil:
		return nil, nil, ErrNoFiles

	case string:
		if value == "" {
			return nil, nil, ErrNoFiles
		}

		return []string{value}, map[string]FileSpec{value: {Optional: optional}}, nil

	case []string:
		specs := make(map[string]FileSpec, len(value))
		paths := make([]string, 0, len(value))

		for _, path := range value {
			if _, seen := specs[path]; seen {
				continue
			}

			paths = append(paths, path)
			specs[path] = FileSpec{Optional: optional}
		}

		if len(paths) == 0 {
			return nil, nil, ErrNoFiles
		}

		return paths, specs, nil

	case []File:
		specs := make(map[string]FileSpec, len(value))
		paths := make([]string, 0, len(value))

		for _, file := range value {
			if _, seen := specs[file.Path]; seen {
				continue
			}

			paths = append(paths, file.Path)
			specs[file.Path] = file.Spec
		}

		if len(paths) == 0 {
			return nil, nil, ErrNoFiles
		}

		return paths, specs, nil

	case map[string]FileSpec:
		if len(value) == 0 {
			return nil, nil, ErrNoFiles
		}

		paths := make([]string, 0, len(value))
		specs := make(map[string]FileSpec, len(value))

		for path, spec := range value {
			paths = append(paths, path)
			specs[path] = spec
		}

		sort.Strings(paths)

		return paths, specs, nil

	default:
		return nil, nil, fmt.Errorf("%w: got %T", ErrInvalidFiles, files)
	}
}
