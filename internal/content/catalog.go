package content

import (
	"regexp"
	"strings"
)

// FieldType tags how a field should be edited and rendered.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeMultiline   FieldType = "multiline"
	TypeImage       FieldType = "image"
	TypeArray       FieldType = "array"
	TypeArrayObject FieldType = "array-object"
	TypeObject      FieldType = "object"
)

// FieldDescriptor is static presentation metadata for one (section, field)
// pair. The catalog is advisory only: it is never used to reject or coerce
// data, just to pick an editing strategy and a label.
type FieldDescriptor struct {
	Section        string
	Field          string
	Category       string
	Label          string
	Type           FieldType
	Multiline      bool
	HideInMainLoop bool
}

var imageHintRe = regexp.MustCompile(`(?i)(image|img|logo|banner|background|photo)`)

// acronyms are label tokens kept fully uppercase.
var acronyms = map[string]bool{"CTA": true, "URL": true, "API": true, "ID": true, "SEO": true}

var catalogIndex = buildCatalogIndex()

func buildCatalogIndex() map[string]FieldDescriptor {
	index := make(map[string]FieldDescriptor, len(fieldCatalog))
	for _, d := range fieldCatalog {
		index[d.Section+"\x00"+d.Field] = d
	}
	return index
}

// LookupField returns the static descriptor for (section, field), if any.
func LookupField(section, field string) (FieldDescriptor, bool) {
	d, ok := catalogIndex[section+"\x00"+field]
	return d, ok
}

// Classify decides the field type for an arbitrary value. A static
// descriptor wins; untracked fields are inferred from the runtime shape
// and, for strings, from an image-hint in the field name.
func Classify(section, field string, value any) FieldType {
	if d, ok := LookupField(section, field); ok {
		if d.Type != "" {
			return d.Type
		}
		if d.Multiline {
			return TypeMultiline
		}
		return TypeString
	}

	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if _, isMap := item.(map[string]any); isMap {
				return TypeArrayObject
			}
		}
		return TypeArray
	case map[string]any:
		return TypeObject
	case string:
		if imageHintRe.MatchString(field) {
			return TypeImage
		}
	}
	return TypeString
}

// FieldLabel derives a human label for a field. An explicit catalog label
// wins; otherwise the camelCase name is split into words, the first letter
// capitalized, and known acronyms uppercased. Cosmetic only.
func FieldLabel(section, field string) string {
	if d, ok := LookupField(section, field); ok && d.Label != "" {
		return d.Label
	}
	return formatFieldLabel(field)
}

var camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func formatFieldLabel(field string) string {
	spaced := camelBoundaryRe.ReplaceAllString(field, "$1 $2")
	words := strings.Fields(spaced)
	// Blank or all-whitespace field names yield no words.
	if len(words) == 0 {
		return ""
	}
	for i, word := range words {
		upper := strings.ToUpper(word)
		if acronyms[upper] {
			words[i] = upper
		}
	}
	label := strings.Join(words, " ")
	runes := []rune(label)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// SectionFields lists the catalog descriptors for one section in
// declaration order.
func SectionFields(section string) []FieldDescriptor {
	var out []FieldDescriptor
	for _, d := range fieldCatalog {
		if d.Section == section {
			out = append(out, d)
		}
	}
	return out
}

// fieldCatalog is the static registry driving the admin editor. Labels are
// in the site's admin language.
var fieldCatalog = []FieldDescriptor{
	// Settings
	{Section: "settings", Category: "Brendinq", Field: "navbarLogo", Label: "Top Navbar Logosu", Type: TypeImage},
	{Section: "settings", Category: "Brendinq", Field: "footerLogo", Label: "Footer Logosu", Type: TypeImage},
	{Section: "settings", Category: "Brendinq", Field: "siteTitle", Label: "Saytın Adı (Title)"},
	{Section: "settings", Category: "SEO və Meta", Field: "siteDescription", Label: "Sayt Təsviri (Description)", Multiline: true},
	{Section: "settings", Category: "SEO və Meta", Field: "seoKeywords", Label: "Açar Sözlər (Keywords)"},
	{Section: "settings", Category: "Əlaqə Məlumatları", Field: "contactEmail", Label: "Əsas E-poçt"},
	{Section: "settings", Category: "Əlaqə Məlumatları", Field: "contactPhone", Label: "Əsas Əlaqə Nömrəsi"},

	// Home
	{Section: "home", Category: "Giriş (Hero)", Field: "heroBadge", Label: "Hero - Kiçik Başlıq (Badge)"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroTitlePrefix", Label: "Hero - Başlıq (Ön hissə)"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroTitleHighlight", Label: "Hero - Başlıq (Vurğulanan)"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroTitleSuffix", Label: "Hero - Başlıq (Son hissə)"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroSummary", Label: "Hero - Qısa Məlumat", Multiline: true},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroPrimaryAction", Label: "Hero - Əsas Düymə"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroPrimaryActionUrl", Label: "Hero - Əsas Düymə URL", HideInMainLoop: true},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroSecondaryAction", Label: "Hero - İkinci Düymə"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroSecondaryActionUrl", Label: "Hero - İkinci Düymə URL", HideInMainLoop: true},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroImage", Label: "Hero - Arxa Fon Şəkli", Type: TypeImage},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroExperienceLabel", Label: "Hero - Təcrübə Etiketi"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroExperienceValue", Label: "Hero - Təcrübə Dəyəri"},
	{Section: "home", Category: "Giriş (Hero)", Field: "heroExperienceSublabel", Label: "Hero - Təcrübə Alt Etiketi"},
	{Section: "home", Category: "Statistika", Field: "statsHeading", Label: "Statistika Bölməsi - Başlıq"},
	{Section: "home", Category: "Statistika", Field: "statsSummary", Label: "Statistika Bölməsi - Təsvir", Multiline: true},
	{Section: "home", Category: "Statistika", Field: "stats", Label: "Statistika Maddələri", Type: TypeArrayObject},
	{Section: "home", Category: "Xidmətlər", Field: "servicesHeading", Label: "Xidmətlər Bölməsi - Başlıq"},
	{Section: "home", Category: "Xidmətlər", Field: "servicesSubtitle", Label: "Xidmətlər Bölməsi - Alt Başlıq"},
	{Section: "home", Category: "Xidmətlər", Field: "servicesSummary", Label: "Xidmətlər Bölməsi - Təsvir", Multiline: true},
	{Section: "home", Category: "Sektorlar", Field: "sectorsHeading", Label: "Sektorlar Bölməsi - Başlıq", Multiline: true},
	{Section: "home", Category: "Sektorlar", Field: "sectors", Label: "Sektorlar Siyahısı", Type: TypeArrayObject},
	{Section: "home", Category: "Proses", Field: "processHeading", Label: "Proses Bölməsi - Başlıq"},
	{Section: "home", Category: "Proses", Field: "processSummary", Label: "Proses Bölməsi - Təsvir", Multiline: true},
	{Section: "home", Category: "Proses", Field: "process", Label: "İş Prosesi Maddələri", Type: TypeArrayObject},
	{Section: "home", Category: "Digər", Field: "clientsHeading", Label: "Müştərilər Bölməsi - Başlıq"},
	{Section: "home", Category: "Digər", Field: "clients", Label: "Müştərilər / Tərəfdaşlar", Type: TypeArrayObject},
	{Section: "home", Category: "Digər", Field: "ctaHeading", Label: "Alt CTA - Başlıq"},
	{Section: "home", Category: "Digər", Field: "ctaButtonText", Label: "Alt CTA - Düymə Mətni"},
	{Section: "home", Category: "Digər", Field: "ctaButtonUrl", Label: "Alt CTA - Düymə URL", HideInMainLoop: true},
	{Section: "home", Category: "Digər", Field: "sections", Label: "Ana Səhifə Bölmə Meta Siyahısı", Type: TypeArrayObject},

	// About
	{Section: "about", Category: "Giriş", Field: "introBadge", Label: "Haqqımızda - Nişan (Badge)"},
	{Section: "about", Category: "Giriş", Field: "introSummary", Label: "Haqqımızda - Ümumi Giriş", Multiline: true},
	{Section: "about", Category: "Giriş", Field: "headerTitlePrefix", Label: "Haqqımızda - Başlıq (Ön hissə)"},
	{Section: "about", Category: "Giriş", Field: "headerTitleHighlight", Label: "Haqqımızda - Başlıq (Vurğulanan)"},
	{Section: "about", Category: "İcmal", Field: "overviewTitle", Label: "İcmal - Başlıq"},
	{Section: "about", Category: "İcmal", Field: "overviewSummary", Label: "İcmal - Təsvir", Multiline: true},
	{Section: "about", Category: "İcmal", Field: "overviewImage", Label: "İcmal - Şəkil", Type: TypeImage},
	{Section: "about", Category: "Missiya", Field: "missionTitle", Label: "Missiya - Başlıq"},
	{Section: "about", Category: "Missiya", Field: "missionSummary", Label: "Missiya - Təsvir", Multiline: true},
	{Section: "about", Category: "Missiya", Field: "missionImage", Label: "Missiya - Şəkil", Type: TypeImage},
	{Section: "about", Category: "Xidmət Sahələri", Field: "serviceTitle", Label: "Xidmət Sahələri - Başlıq"},
	{Section: "about", Category: "Xidmət Sahələri", Field: "serviceSummary", Label: "Xidmət Sahələri - Təsvir", Multiline: true},
	{Section: "about", Category: "Komanda", Field: "team", Label: "Komanda Üzvləri", Type: TypeArrayObject},
	{Section: "about", Category: "Digər", Field: "testimonials", Label: "Müştəri Rəyləri Siyahısı", Type: TypeArrayObject},
	{Section: "about", Category: "Digər", Field: "testimonialsTitle", Label: "Rəylər Bölməsi - Başlıq"},
	{Section: "about", Category: "Digər", Field: "testimonialsCTA", Label: "Rəylər Bölməsi - Alt CTA", Multiline: true},
	{Section: "about", Category: "Naviqasiya", Field: "tabs", Label: "Yan Panel Tabları", Type: TypeArrayObject},

	// Services page
	{Section: "services", Category: "Giriş (Hero)", Field: "heroBadge", Label: "Səhifə Nişanı (Badge)"},
	{Section: "services", Category: "Giriş (Hero)", Field: "heroTitlePrefix", Label: "Başlıq (Ön hissə)"},
	{Section: "services", Category: "Giriş (Hero)", Field: "heroTitleHighlight", Label: "Başlıq (Vurğulanan)"},
	{Section: "services", Category: "Giriş (Hero)", Field: "heroTitleSuffix", Label: "Başlıq (Son hissə)"},
	{Section: "services", Category: "Giriş (Hero)", Field: "heroSummary", Label: "Qısa Məlumat", Multiline: true},
	{Section: "services", Category: "Giriş (Hero)", Field: "heroImage", Label: "Arxa Fon Şəkli", Type: TypeImage},
	{Section: "services", Category: "Siyahı", Field: "list", Label: "Xidmətlər", Type: TypeArrayObject},

	// Service detail
	{Section: "servicedetail", Category: "Giriş", Field: "heroBadge", Label: "Xidmət Detalı - Nişan (Badge)"},
	{Section: "servicedetail", Category: "Giriş", Field: "heroSummary", Label: "Xidmət Detalı - Hero Təsvir", Multiline: true},
	{Section: "servicedetail", Category: "Parametrlər", Field: "summaryStandard", Label: "Xidmət Standartı Prefix", Multiline: true},
	{Section: "servicedetail", Category: "Parametrlər", Field: "summaryDuration", Label: "Xidmət Müddəti Prefix", Multiline: true},
	{Section: "servicedetail", Category: "Parametrlər", Field: "summaryCTA", Label: "Düymə Yazısı (CTA)"},
	{Section: "servicedetail", Category: "Məzmun", Field: "content", Label: "Geniş Məlumat (Alt hissə)", Multiline: true},
	{Section: "servicedetail", Category: "Məzmun", Field: "benefits", Label: "Xidmətə Daxil Olanlar (List)", Type: TypeArray},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "scopeTitle", Label: "Əhatə Dairəsi Başlığı", Multiline: true},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "summaryTitle", Label: "Xülasə Bölməsi Başlığı", Multiline: true},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "benefitsTitle", Label: "İstiqamətlər Bölməsi Başlığı", Multiline: true},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "durationLabel", Label: "Müddət Etiketi", Multiline: true},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "standardLabel", Label: "Standart Etiketi", Multiline: true},
	{Section: "servicedetail", Category: "Başlıqlar", Field: "consultationTitle", Label: "Məsləhət Başlığı", Multiline: true},

	// Blog page
	{Section: "blog", Category: "Giriş (Hero)", Field: "heroTitlePrefix", Label: "Başlıq (Ön hissə)"},
	{Section: "blog", Category: "Giriş (Hero)", Field: "heroTitleHighlight", Label: "Başlıq (Vurğulanan)"},
	{Section: "blog", Category: "Giriş (Hero)", Field: "heroSummary", Label: "Qısa Məlumat", Multiline: true},
	{Section: "blog", Category: "Giriş (Hero)", Field: "heroImage", Label: "Arxa Fon Şəkli", Type: TypeImage},
	{Section: "blog", Category: "Parametrlər", Field: "blogBadge", Label: "Bloq Nişanı (Badge)"},
	{Section: "blog", Category: "Parametrlər", Field: "readMoreText", Label: "Daha çox oxu düyməsi"},
	{Section: "blog", Category: "Sistem Mesajları", Field: "loadingText", Label: "Yüklənmə mətni"},
	{Section: "blog", Category: "Sistem Mesajları", Field: "emptyText", Label: "Boş olduqda görünən mətn"},

	// Academy page
	{Section: "academy", Category: "Giriş (Hero)", Field: "heroBadge", Label: "Akademiya Nişanı (Badge)"},
	{Section: "academy", Category: "Giriş (Hero)", Field: "heroTitlePrefix", Label: "Başlıq (Ön hissə)"},
	{Section: "academy", Category: "Giriş (Hero)", Field: "heroTitleHighlight", Label: "Başlıq (Vurğulanan)"},
	{Section: "academy", Category: "Giriş (Hero)", Field: "heroSummary", Label: "Qısa Məlumat", Multiline: true},
	{Section: "academy", Category: "Giriş (Hero)", Field: "heroImage", Label: "Arxa Fon Şəkli", Type: TypeImage},
	{Section: "academy", Category: "Parametrlər", Field: "cardCTA", Label: "Kurs Düyməsi (Müraciət)"},
	{Section: "academy", Category: "Parametrlər", Field: "sidebarNote", Label: "Yan Panel Qeydi", Multiline: true},
	{Section: "academy", Category: "Sistem Mesajları", Field: "loadingText", Label: "Yüklənmə mətni"},
	{Section: "academy", Category: "Sistem Mesajları", Field: "emptyText", Label: "Boş olduqda görünən mətn"},

	// Contact
	{Section: "contact", Category: "Giriş (Hero)", Field: "headerTitle", Label: "Başlıq (Ön hissə)"},
	{Section: "contact", Category: "Giriş (Hero)", Field: "headerHighlight", Label: "Başlıq (Vurğulanan)"},
	{Section: "contact", Category: "Giriş (Hero)", Field: "headerSuffix", Label: "Başlıq (Son hissə)"},
	{Section: "contact", Category: "Giriş (Hero)", Field: "headerSummary", Label: "Qısa Məlumat", Multiline: true},
	{Section: "contact", Category: "Giriş (Hero)", Field: "contactBadge", Label: "Əlaqə Nişanı (Badge)"},
	{Section: "contact", Category: "Ünvan və Əlaqə", Field: "address", Label: "Ofis Ünvanı"},
	{Section: "contact", Category: "Ünvan və Əlaqə", Field: "phone", Label: "Telefon Nömrəsi"},
	{Section: "contact", Category: "Ünvan və Əlaqə", Field: "email", Label: "E-poçt Ünvanı"},
	{Section: "contact", Category: "Ünvan və Əlaqə", Field: "hours", Label: "İş Saatları"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formTitle", Label: "Form Başlığı"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formSubtitle", Label: "Form Alt Başlığı", Multiline: true},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formNameLabel", Label: "Ad Sahəsi Etiketi"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formEmailLabel", Label: "E-poçt Sahəsi Etiketi"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formServiceLabel", Label: "Xidmət Seçimi Etiketi"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formMessageLabel", Label: "Mesaj Sahəsi Etiketi"},
	{Section: "contact", Category: "Əlaqə Forması", Field: "formButtonText", Label: "Form Düymə Mətni"},
	{Section: "contact", Category: "Digər", Field: "socialTitle", Label: "Sosial Media Başlığı"},

	// Social
	{Section: "social", Category: "Sosial Media", Field: "title", Label: "Sosial Başlıq"},
	{Section: "social", Category: "Sosial Media", Field: "links", Label: "Sosial Linklər", Type: TypeArrayObject},

	// Forms
	{Section: "forms", Category: "Audit Formu", Field: "auditFormName", Label: "Audit Formu - Daxili Ad"},
	{Section: "forms", Category: "Audit Formu", Field: "auditModalTitle", Label: "Audit Formu - Başlıq"},
	{Section: "forms", Category: "Audit Formu", Field: "generalModalTitle", Label: "Ümumi Xidmət Formu - Başlıq"},
	{Section: "forms", Category: "Audit Formu", Field: "auditSelectedServiceLabel", Label: "Audit Formu - Seçilən Xidmət Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditBusinessTypeLabel", Label: "Audit Formu - Fəaliyyət Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditTaxTypeLabel", Label: "Audit Formu - Vergi Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditClientStatusLabel", Label: "Audit Formu - Status Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditNameLabel", Label: "Audit Formu - Ad Soyad Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditPhoneLabel", Label: "Audit Formu - Telefon Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditEmailLabel", Label: "Audit Formu - Email Etiketi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditSelectPlaceholder", Label: "Audit Formu - Seçim Placeholder"},
	{Section: "forms", Category: "Audit Formu", Field: "auditBusinessTypeOptions", Label: "Audit Formu - Fəaliyyət Seçimləri", Type: TypeArray},
	{Section: "forms", Category: "Audit Formu", Field: "auditTaxTypeOptions", Label: "Audit Formu - Vergi Seçimləri", Type: TypeArray},
	{Section: "forms", Category: "Audit Formu", Field: "auditClientStatusOptions", Label: "Audit Formu - Status Seçimləri", Type: TypeArray},
	{Section: "forms", Category: "Audit Formu", Field: "auditSubmitButton", Label: "Audit Formu - Göndər Düyməsi"},
	{Section: "forms", Category: "Audit Formu", Field: "auditSubmitLoading", Label: "Audit Formu - Göndərilir Mətni"},
	{Section: "forms", Category: "Audit Formu", Field: "auditSuccessTitle", Label: "Audit Formu - Uğur Başlığı"},
	{Section: "forms", Category: "Audit Formu", Field: "auditSuccessMessage", Label: "Audit Formu - Uğur Mesajı", Multiline: true},
	{Section: "forms", Category: "Audit Formu", Field: "auditSuccessButton", Label: "Audit Formu - Uğur Düyməsi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingFormName", Label: "Təlim Formu - Daxili Ad"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingModalTitle", Label: "Təlim Formu - Başlıq"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingIntroTemplate", Label: "Təlim Formu - Giriş Mətni ({trainingTitle})", Multiline: true},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingNameLabel", Label: "Təlim Formu - Ad Etiketi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingPhoneLabel", Label: "Təlim Formu - Telefon Etiketi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingEmailLabel", Label: "Təlim Formu - Email Etiketi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingNoteLabel", Label: "Təlim Formu - Qeyd Etiketi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingSubmitButton", Label: "Təlim Formu - Göndər Düyməsi"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingSubmitLoading", Label: "Təlim Formu - Göndərilir Mətni"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingSuccessTitle", Label: "Təlim Formu - Uğur Başlığı"},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingSuccessMessage", Label: "Təlim Formu - Uğur Mesajı", Multiline: true},
	{Section: "forms", Category: "Təlim Formu", Field: "trainingSuccessButton", Label: "Təlim Formu - Uğur Düyməsi"},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactFormName", Label: "Əlaqə Formu - Daxili Ad"},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactPhoneLabel", Label: "Əlaqə Formu - Telefon Etiketi"},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactServiceOptions", Label: "Əlaqə Formu - Xidmət Seçimləri", Type: TypeArray},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactSubmitLoading", Label: "Əlaqə Formu - Göndərilir Mətni"},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactSuccessTitle", Label: "Əlaqə Formu - Uğur Başlığı"},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactSuccessMessage", Label: "Əlaqə Formu - Uğur Mesajı", Multiline: true},
	{Section: "forms", Category: "Əlaqə Formu", Field: "contactSuccessButton", Label: "Əlaqə Formu - Uğur Düyməsi"},

	// Navigation
	{Section: "navigation", Category: "Parametrlər", Field: "primaryCTA", Label: "Əsas Menyu Düyməsi (Əlaqə)"},
	{Section: "navigation", Category: "Menyu", Field: "items", Label: "Menyu Maddələri", Type: TypeArrayObject},

	// Footer
	{Section: "footer", Category: "Brendinq", Field: "brandText", Label: "Logo mətni (logo yoxdursa)"},
	{Section: "footer", Category: "Məzmun", Field: "description", Label: "Footer Təsviri", Multiline: true},
	{Section: "footer", Category: "Naviqasiya", Field: "navTitle", Label: "Naviqasiya Sütunu Başlığı"},
	{Section: "footer", Category: "Naviqasiya", Field: "navLinks", Label: "Naviqasiya Linkləri", Type: TypeArrayObject},
	{Section: "footer", Category: "Xidmətlər", Field: "servicesTitle", Label: "Xidmətlər Sütunu Başlığı"},
	{Section: "footer", Category: "Xidmətlər", Field: "serviceLinks", Label: "Xidmət Linkləri", Type: TypeArrayObject},
	{Section: "footer", Category: "Akademiya", Field: "academyTitle", Label: "Akademiya Sütunu Başlığı"},
	{Section: "footer", Category: "Akademiya", Field: "academyLinks", Label: "Akademiya Linkləri (Manual)", Type: TypeArrayObject},
	{Section: "footer", Category: "Akademiya", Field: "academyAllLabel", Label: "Bütün Təlimlər Mətni"},
	{Section: "footer", Category: "Digər", Field: "socialHint", Label: "Sosial Media İpucu (Bizi izləyin)"},
}
