package content

import (
	"regexp"
	"sort"
	"strconv"
)

// Document is the full nested mapping of site copy and configuration,
// organized by named top-level sections.
type Document = map[string]any

var numericKeyRe = regexp.MustCompile(`^\d+$`)

// Merge reconciles a partial override document against a base document.
// Keys absent from the override keep their base values; nested objects are
// merged recursively; scalars and arrays are replaced wholesale; an
// explicit nil override falls back to the base value instead of erasing
// it. A non-object override is treated as empty, so the result is always a
// fully-populated copy of base at minimum.
func Merge(base Document, override any) Document {
	result := make(Document, len(base))
	for key, value := range base {
		result[key] = value
	}

	overrideMap, ok := override.(map[string]any)
	if !ok || overrideMap == nil {
		return result
	}

	for key, value := range overrideMap {
		if key == "services" {
			value = migrateNumericServices(value)
		}

		if nested, isMap := value.(map[string]any); isMap {
			baseChild, _ := result[key].(map[string]any)
			if baseChild == nil {
				baseChild = map[string]any{}
			}
			result[key] = Merge(baseChild, nested)
			continue
		}

		if value == nil {
			if baseValue, exists := base[key]; exists {
				result[key] = baseValue
			}
			continue
		}
		result[key] = value
	}

	return result
}

// migrateNumericServices handles the legacy storage format that serialized
// the services list as an object with numeric keys. Elements are collected
// in ascending numeric key order into a "list" array; the original numeric
// keys are left in place.
func migrateNumericServices(value any) any {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return value
	}
	if _, hasList := obj["list"]; hasList {
		return value
	}

	type entry struct {
		index int
		item  map[string]any
	}
	var entries []entry
	for key, raw := range obj {
		if !numericKeyRe.MatchString(key) {
			continue
		}
		item, isMap := raw.(map[string]any)
		if !isMap {
			continue
		}
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries = append(entries, entry{index: index, item: item})
	}
	if len(entries) == 0 {
		return value
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	list := make([]any, 0, len(entries))
	for _, e := range entries {
		copied := make(map[string]any, len(e.item))
		for k, v := range e.item {
			copied[k] = v
		}
		list = append(list, copied)
	}

	migrated := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		migrated[k] = v
	}
	migrated["list"] = list
	return migrated
}

// DeepCopy returns a structurally independent copy of a document tree.
func DeepCopy(doc Document) Document {
	out := make(Document, len(doc))
	for key, value := range doc {
		out[key] = deepCopyValue(value)
	}
	return out
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return DeepCopy(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
