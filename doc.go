// Package yamlsettings populates application settings by deep-merging one or
// more YAML/JSON documents into a single mapping.
//
// A caller declares which files to load, whether each one is required, and an
// optional subpath to extract before merging. Declarations are resolved with
// a two-tier override (an explicit Declaration beats a settings-block one),
// then a Source loads, validates, and merges the documents in ascending
// priority order: the last file wins on leaf-level conflicts while shared
// nested mappings are combined key by key.
//
//	reload := false
//	cfg, err := yamlsettings.Resolve(yamlsettings.Declaration{
//	    Files:  []string{"base.yaml", "override.yaml"},
//	    Reload: &reload,
//	}, yamlsettings.Declaration{})
//	if err != nil { ... }
//
//	source := yamlsettings.NewSource(cfg)
//	settings, err := source.Load()
//
// Unless Reload is enabled the merged result is computed once per Source and
// cached; with Reload every access re-reads the files.
//
// A Source answers per-field queries through FieldValue and composes with
// other sources (flags, environment, secrets) via Chain, where the caller
// chooses the precedence order. Typed decoding with defaulting and validation
// hooks is available through Provider, and Fx applications can mount a named
// Source with NewModule.
package yamlsettings
