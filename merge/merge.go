package merge

// Merge combines the given mappings in ascending priority order: the last
// layer wins on leaf-level conflicts. Nested mappings are merged recursively,
// non-mapping values (including arrays) replace the accumulated value
// wholesale. The inputs are left untouched and the result shares no nested
// mappings with them.
func Merge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)

	for _, layer := range layers {
		mergeInto(out, layer)
	}

	return out
}

// Clone returns a deep copy of src: every nested map[string]any is copied.
// Leaf values (scalars, arrays) are carried over as-is.
func Clone(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))

	for key, value := range src {
		if nested, isMap := value.(map[string]any); isMap {
			out[key] = Clone(nested)

			continue
		}

		out[key] = value
	}

	return out
}

// mergeInto folds src into dst. dst only ever holds mappings owned by this
// package (clones), so recursing into them in place never aliases a caller's
// document.
func mergeInto(dst, src map[string]any) {
	for key, incoming := range src {
		incomingMap, incomingIsMap := incoming.(map[string]any)

		if existing, existingIsMap := dst[key].(map[string]any); existingIsMap && incomingIsMap {
			mergeInto(existing, incomingMap)

			continue
		}

		if incomingIsMap {
			dst[key] = Clone(incomingMap)

			continue
		}

		dst[key] = incoming
	}
}
