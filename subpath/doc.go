// Package subpath extracts a nested value from a YAML document before it
// enters the merge.
//
// Expressions use dotted field access with optional bracketed indexes:
//
//	"nested"             -> document["nested"]
//	"nested.list[0]"     -> document["nested"]["list"][0]
//	"$.nested.list[0]"   -> same, in explicit PathString form
//
// Navigation is delegated to goccy/go-yaml PathString.
package subpath
