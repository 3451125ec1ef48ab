package interceptor

import "github.com/MKhiriev/go-zk-vault/internal/registry"

// visitFunc is called for every string leaf addressed by a field path.
// It returns the replacement value and whether to replace.
type visitFunc func(field string, value string) (string, bool)

// walk applies fn to every string leaf of node addressed by fp.
// A top-level array applies the path to each element. Missing fields and
// values of an unexpected type are skipped. It reports whether anything
// was replaced.
func walk(node any, fp registry.FieldPath, fn visitFunc) bool {
	if list, ok := node.([]any); ok {
		changed := false
		for _, el := range list {
			if walk(el, fp, fn) {
				changed = true
			}
		}
		return changed
	}

	obj, ok := node.(map[string]any)
	if !ok || len(fp) == 0 {
		return false
	}

	seg := fp[0]
	child, ok := obj[seg.Name]
	if !ok {
		return false
	}

	if len(fp) == 1 {
		s, ok := child.(string)
		if !ok {
			return false
		}
		replacement, replace := fn(fp.String(), s)
		if replace {
			obj[seg.Name] = replacement
		}
		return replace
	}

	if seg.Array {
		list, ok := child.([]any)
		if !ok {
			return false
		}
		changed := false
		for _, el := range list {
			if _, isObj := el.(map[string]any); isObj && walk(el, fp[1:], fn) {
				changed = true
			}
		}
		return changed
	}

	if _, isObj := child.(map[string]any); !isObj {
		return false
	}
	return walk(child, fp[1:], fn)
}
