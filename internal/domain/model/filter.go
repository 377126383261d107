package model

import "reflect"

// Keep reports whether a value belongs on the wire: non-empty strings and
// non-empty lists or mappings are kept, everything else is dropped.
func Keep(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case Map:
		return len(t) > 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return false
}

// Filter returns the entries of m that Keep accepts, in their original order.
func Filter(m Map) Map {
	out := make(Map, 0, len(m))
	for _, e := range m {
		if Keep(e.Value) {
			out = append(out, e)
		}
	}
	return out
}
