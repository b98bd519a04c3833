// Package content implements the content normalization and merge engine:
// value normalizers for boundary-crossing data, the recursive override
// merge against the canonical default document, and the field catalog
// that drives editing metadata.
package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

var (
	truthyWords = map[string]bool{"1": true, "true": true, "yes": true, "on": true, "enabled": true, "active": true}
	falsyWords  = map[string]bool{"0": true, "false": true, "no": true, "off": true, "disabled": true, "inactive": true}
)

// NormalizeBool coerces raw into a boolean. Native booleans pass through,
// numbers map via a nonzero test, and strings are trimmed, case-folded and
// matched against an accept-list. Anything else returns fallback.
func NormalizeBool(raw any, fallback bool) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return fallback
		}
		return f != 0
	case string:
		word := strings.ToLower(strings.TrimSpace(v))
		if truthyWords[word] {
			return true
		}
		if falsyWords[word] {
			return false
		}
		return fallback
	default:
		return fallback
	}
}

// NormalizePort coerces raw into a positive integer port number,
// returning fallback for anything that is not one.
func NormalizePort(raw any, fallback int) int {
	switch v := raw.(type) {
	case int:
		if v > 0 {
			return v
		}
	case int64:
		if v > 0 {
			return int(v)
		}
	case float64:
		if v > 0 && v == float64(int(v)) {
			return int(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil && n > 0 {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// NormalizeString accepts only native strings and trims them;
// non-strings degrade to the empty string.
func NormalizeString(raw any) string {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// NormalizeStringOr is NormalizeString with an explicit fallback for
// non-string input.
func NormalizeStringOr(raw any, fallback string) string {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return fallback
}

// NormalizeSlice coerces raw into a slice. Native slices pass through and
// JSON strings are parsed and accepted only when the parse yields an
// array. All other inputs, and parse failures, yield an empty slice.
func NormalizeSlice(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return []any{}
		}
		if list, ok := parsed.([]any); ok {
			return list
		}
		return []any{}
	default:
		return []any{}
	}
}

// NormalizeMap coerces raw into a mapping. Native non-array objects pass
// through and JSON-string objects are parsed and accepted only when the
// result is an object. Everything else yields an empty map.
func NormalizeMap(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return map[string]any{}
		}
		if m, ok := parsed.(map[string]any); ok {
			return m
		}
		return map[string]any{}
	default:
		return map[string]any{}
	}
}

// NormalizeObjectList coerces a value expected to be a list of mappings.
// Legacy deployments stored some of these lists as plain string arrays
// (clients, benefits); a bare string element becomes a mapping with the
// string under stringKey and the remaining keys filled from defaults.
func NormalizeObjectList(raw any, stringKey string, defaults map[string]any) []map[string]any {
	items := NormalizeSlice(raw)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			entry := make(map[string]any, len(defaults)+len(v))
			for k, dv := range defaults {
				entry[k] = dv
			}
			for k, vv := range v {
				entry[k] = vv
			}
			out = append(out, entry)
		case string:
			entry := make(map[string]any, len(defaults)+1)
			for k, dv := range defaults {
				entry[k] = dv
			}
			entry[stringKey] = v
			out = append(out, entry)
		}
	}
	return out
}

// NormalizeStringList is NormalizeSlice narrowed to strings; non-string
// elements are dropped rather than coerced.
func NormalizeStringList(raw any) []string {
	items := NormalizeSlice(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
