package subpath

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNotFound is returned when the expression matches nothing in the document.
var ErrNotFound = errors.New("subpath not found")

// ErrInvalidPath is returned when the expression cannot be compiled.
var ErrInvalidPath = errors.New("invalid subpath expression")

// Extract parses the YAML document from r and returns the value selected by
// expr. The document itself is returned for an empty expression.
func Extract(r io.Reader, expr string) (any, error) {
	var value any

	if expr == "" {
		err := yaml.NewDecoder(r).Decode(&value)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Empty document. Callers decide whether nil is acceptable.
				return nil, nil
			}

			return nil, fmt.Errorf("decoding document: %w", err)
		}

		return value, nil
	}

	pathObj, err := yaml.PathString(toPathString(expr))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, expr, err)
	}

	err = pathObj.Read(r, &value)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, expr)
		}

		return nil, fmt.Errorf("reading subpath %q: %w", expr, err)
	}

	return value, nil
}

// toPathString converts a dotted expression to goccy/go-yaml PathString form.
// Expressions already starting with "$" are passed through. The legacy
// ".[n]" index spelling is accepted alongside "[n]".
//
//	"key"            -> "$.key"
//	"nested.list[0]" -> "$.nested.list[0]"
//	"nested.list.[0]" -> "$.nested.list[0]"
func toPathString(expr string) string {
	if strings.HasPrefix(expr, "$") {
		return expr
	}

	expr = strings.ReplaceAll(expr, ".[", "[")

	return "$." + expr
}
