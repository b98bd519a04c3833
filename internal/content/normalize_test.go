package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeBool(t *testing.T) {
	cases := []struct {
		name     string
		raw      any
		fallback bool
		want     bool
	}{
		{"native true", true, false, true},
		{"native false", false, true, false},
		{"yes word", "YES", false, true},
		{"off word", "Off", true, false},
		{"padded enabled", "  enabled ", false, true},
		{"unknown word", "maybe", true, true},
		{"unknown word false fallback", "maybe", false, false},
		{"nonzero float", float64(2), false, true},
		{"zero float", float64(0), true, false},
		{"json number", json.Number("1"), false, true},
		{"nil", nil, true, true},
		{"object", map[string]any{}, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeBool(tc.raw, tc.fallback); got != tc.want {
				t.Fatalf("NormalizeBool(%v, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestNormalizePort(t *testing.T) {
	cases := []struct {
		name     string
		raw      any
		fallback int
		want     int
	}{
		{"string port", "587", 25, 587},
		{"padded string", " 465 ", 25, 465},
		{"float from json", float64(2525), 25, 2525},
		{"fractional float", 587.5, 25, 25},
		{"negative", -1, 587, 587},
		{"zero", 0, 587, 587},
		{"garbage string", "abc", 587, 587},
		{"nil", nil, 587, 587},
		{"json number", json.Number("993"), 25, 993},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePort(tc.raw, tc.fallback); got != tc.want {
				t.Fatalf("NormalizePort(%v, %d) = %d, want %d", tc.raw, tc.fallback, got, tc.want)
			}
		})
	}
}

func TestNormalizeString(t *testing.T) {
	if got := NormalizeString("  salam  "); got != "salam" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeString(42); got != "" {
		t.Fatalf("non-string should degrade to empty, got %q", got)
	}
	if got := NormalizeStringOr(nil, "default"); got != "default" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeStringOr(" x ", "default"); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestNormalizeSlice(t *testing.T) {
	native := []any{"a", "b"}
	if got := NormalizeSlice(native); !reflect.DeepEqual(got, native) {
		t.Fatalf("native slice mangled: %v", got)
	}
	if got := NormalizeSlice(`["a","b"]`); !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Fatalf("JSON-string array not parsed: %v", got)
	}
	if got := NormalizeSlice(`{"a":1}`); len(got) != 0 {
		t.Fatalf("JSON object should yield empty slice, got %v", got)
	}
	if got := NormalizeSlice("not json"); len(got) != 0 {
		t.Fatalf("parse failure should yield empty slice, got %v", got)
	}
	if got := NormalizeSlice(map[string]any{}); len(got) != 0 {
		t.Fatalf("map should yield empty slice, got %v", got)
	}
}

func TestNormalizeMap(t *testing.T) {
	native := map[string]any{"k": "v"}
	if got := NormalizeMap(native); !reflect.DeepEqual(got, native) {
		t.Fatalf("native map mangled: %v", got)
	}
	if got := NormalizeMap(`{"k":"v"}`); got["k"] != "v" {
		t.Fatalf("JSON-string object not parsed: %v", got)
	}
	if got := NormalizeMap(`["a"]`); len(got) != 0 {
		t.Fatalf("JSON array should yield empty map, got %v", got)
	}
	if got := NormalizeMap(12); len(got) != 0 {
		t.Fatalf("number should yield empty map, got %v", got)
	}
}

func TestNormalizeObjectListCoercesLegacyStrings(t *testing.T) {
	defaults := map[string]any{"name": "", "logo": ""}
	got := NormalizeObjectList([]any{
		"Acme",
		map[string]any{"name": "Beta MMC", "logo": "/uploads/beta.png"},
		42,
	}, "name", defaults)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (non-string scalar dropped)", len(got))
	}
	if got[0]["name"] != "Acme" || got[0]["logo"] != "" {
		t.Fatalf("legacy string entry = %v", got[0])
	}
	if got[1]["name"] != "Beta MMC" || got[1]["logo"] != "/uploads/beta.png" {
		t.Fatalf("object entry = %v", got[1])
	}
}

func TestNormalizeObjectListParsesJSONString(t *testing.T) {
	got := NormalizeObjectList(`[{"name":"Acme"}]`, "name", map[string]any{"logo": ""})
	if len(got) != 1 || got[0]["name"] != "Acme" || got[0]["logo"] != "" {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeStringList(t *testing.T) {
	got := NormalizeStringList([]any{"a", 2, "b", nil})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
	got = NormalizeStringList(`["x","y"]`)
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("JSON-string list: got %v", got)
	}
}
