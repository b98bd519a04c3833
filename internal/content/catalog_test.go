package content

import "testing"

func TestClassifyDescriptorWins(t *testing.T) {
	// navbarLogo carries an explicit image type even when the value is a map.
	if got := Classify("settings", "navbarLogo", map[string]any{}); got != TypeImage {
		t.Fatalf("got %q, want %q", got, TypeImage)
	}
	// siteDescription is multiline without an explicit type.
	if got := Classify("settings", "siteDescription", "text"); got != TypeMultiline {
		t.Fatalf("got %q, want %q", got, TypeMultiline)
	}
	if got := Classify("settings", "siteTitle", "Azfin"); got != TypeString {
		t.Fatalf("got %q, want %q", got, TypeString)
	}
}

func TestClassifyInfersShapeForUntrackedFields(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
		want  FieldType
	}{
		{"scalar array", "tags", []any{"a", "b"}, TypeArray},
		{"object array", "rows", []any{map[string]any{"k": 1}}, TypeArrayObject},
		{"mixed array", "rows", []any{"a", map[string]any{}}, TypeArrayObject},
		{"object", "meta", map[string]any{}, TypeObject},
		{"image hint", "headerBackground", "/uploads/bg.png", TypeImage},
		{"image hint case", "CardIMG", "x.png", TypeImage},
		{"plain string", "caption", "text", TypeString},
		{"number", "count", float64(3), TypeString},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify("custom", tc.field, tc.value); got != tc.want {
				t.Fatalf("Classify(custom, %q, %v) = %q, want %q", tc.field, tc.value, got, tc.want)
			}
		})
	}
}

func TestFieldLabel(t *testing.T) {
	// Catalog label wins.
	if got := FieldLabel("home", "heroBadge"); got != "Hero - Kiçik Başlıq (Badge)" {
		t.Fatalf("got %q", got)
	}

	cases := []struct {
		field string
		want  string
	}{
		{"heroTitlePrefix2", "Hero Title Prefix2"},
		{"ctaButtonUrl", "CTA Button URL"},
		{"seoTitle", "SEO Title"},
		{"apiKey", "API Key"},
		{"id", "ID"},
		{"title", "Title"},
		{"əlaqəForması", "ƏlaqəForması"},
		{" ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FieldLabel("custom", tc.field); got != tc.want {
			t.Fatalf("FieldLabel(custom, %q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestSectionFieldsDeclarationOrder(t *testing.T) {
	fields := SectionFields("navigation")
	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2", len(fields))
	}
	if fields[0].Field != "primaryCTA" || fields[1].Field != "items" {
		t.Fatalf("order = %q, %q", fields[0].Field, fields[1].Field)
	}
	if got := SectionFields("nonexistent"); got != nil {
		t.Fatalf("unknown section should yield nil, got %v", got)
	}
}

func TestLookupField(t *testing.T) {
	d, ok := LookupField("footer", "navLinks")
	if !ok || d.Type != TypeArrayObject {
		t.Fatalf("LookupField(footer, navLinks) = %+v, %v", d, ok)
	}
	if _, ok := LookupField("footer", "missing"); ok {
		t.Fatal("unexpected hit for untracked field")
	}
}
