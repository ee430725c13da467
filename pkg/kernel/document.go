package kernel

import "fmt"

// Document is a loosely-typed key-value record produced by LLM structured
// extraction. Field names are whatever the completion model returned, so
// consumers read keys through the accessors below, which substitute
// defaults for absent or differently-typed values instead of erroring.
type Document map[string]any

// Value returns the raw value for key, or def when the key is absent or nil.
func (d Document) Value(key string, def any) any {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	return v
}

// String returns the value for key as a string, or def when absent.
// Non-string scalars are formatted with fmt.Sprint.
func (d Document) String(key, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// List returns the value for key as a []any, or an empty slice when the
// key is absent or not a list.
func (d Document) List(key string) []any {
	switch v := d[key].(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// StringSlice returns the value for key as a []string, coercing list
// elements with fmt.Sprint. Absent or non-list values yield an empty slice.
func (d Document) StringSlice(key string) []string {
	items := d.List(key)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}
