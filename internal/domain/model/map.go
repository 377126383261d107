package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value any
}

// Map is an insertion-ordered mapping. It encodes to a JSON object whose keys
// appear in the same order as the entries.
type Map []Entry

// NewMap builds a Map from a plain map with keys in lexical order.
func NewMap(src map[string]any) Map {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(Map, 0, len(keys))
	for _, k := range keys {
		m = append(m, Entry{Key: k, Value: src[k]})
	}
	return m
}

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Plain converts m, and any Map or []Map nested in it, to map[string]any.
func (m Map) Plain() map[string]any {
	out := make(map[string]any, len(m))
	for _, e := range m {
		out[e.Key] = plainValue(e.Value)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case Map:
		return t.Plain()
	case []Map:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = item.Plain()
		}
		return list
	}
	return v
}

// MarshalJSON implements json.Marshaler.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
