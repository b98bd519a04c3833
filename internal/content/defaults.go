package content

// defaultDocument is the canonical content tree. Every section key present
// here is guaranteed to exist in merged output. It is read only through
// DefaultDocument, which hands out deep copies.
var defaultDocument = Document{
	"settings": map[string]any{
		"navbarLogo":      "",
		"footerLogo":      "",
		"siteTitle":       "Azfin Group MMC",
		"siteDescription": "Azfin Consulting olaraq şirkətlərin maliyyə hesabatlılığında şəffaflığı təmin edir, vergi risklərini minimuma endirir və strateji inkişaf yollarını müəyyən edirik.",
		"seoKeywords":     "audit, vergi, mühasibatlıq, konsaltinq, maliyyə",
		"contactEmail":    "office@azfin.az",
		"contactPhone":    "+994 50 200 00 00",
	},
	"home": map[string]any{
		"heroBadge":              "Peşəkar konsaltinq",
		"heroTitlePrefix":        "Biznesiniz üçün",
		"heroTitleHighlight":     "Professional Audit",
		"heroTitleSuffix":        "",
		"heroSummary":            "Azfin Consulting olaraq şirkətlərin maliyyə hesabatlılığında şəffaflığı təmin edir, vergi risklərini minimuma endirir və strateji inkişaf yollarını müəyyən edirik.",
		"heroPrimaryAction":      "Xidmətlərimiz",
		"heroPrimaryActionUrl":   "/services",
		"heroSecondaryAction":    "Əlaqə",
		"heroSecondaryActionUrl": "/contact",
		"heroImage":              "",
		"heroExperienceLabel":    "illik təcrübə",
		"heroExperienceValue":    "15+",
		"heroExperienceSublabel": "maliyyə və audit sahəsində",
		"statsHeading":           "Əsas rəqəmlərimiz",
		"statsSummary":           "850+ uğurlu audit, 320+ korporativ müştəri, 15+ illik təcrübə və 25+ peşəkar ekspert ilə əməliyyatları dəstəkləyirik.",
		"stats": []any{
			map[string]any{"label": "Uğurlu audit", "value": "850+"},
			map[string]any{"label": "Korporativ müştəri", "value": "320+"},
			map[string]any{"label": "İllik təcrübə", "value": "15+"},
			map[string]any{"label": "Peşəkar ekspert", "value": "25+"},
		},
		"servicesHeading":  "Xidmətlərimiz",
		"servicesSubtitle": "Əsas xidmət istiqamətləri",
		"servicesSummary":  "Vergi xidmətləri, maliyyə xidmətləri, audit xidmətləri, hüquq xidmətləri və kadr uçotu istiqamətində peşəkar konsaltinq.",
		"sectorsHeading":   "Hədəf sektorlar",
		"sectors": []any{
			map[string]any{"title": "Logistika", "icon": "truck"},
			map[string]any{"title": "İaşə", "icon": "utensils"},
			map[string]any{"title": "Təhsil", "icon": "graduation-cap"},
			map[string]any{"title": "İstehsalat", "icon": "factory"},
			map[string]any{"title": "Daşınmaz əmlak", "icon": "building"},
			map[string]any{"title": "Texnologiya", "icon": "cpu"},
		},
		"processHeading": "İş prosesi",
		"processSummary": "Diaqnostika, strategiya, icraat və təsdiqləmə mərhələləri ilə hər layihəyə elmi yanaşma.",
		"process": []any{
			map[string]any{"title": "Diaqnostika", "description": "Mövcud vəziyyətin təhlili"},
			map[string]any{"title": "Strategiya", "description": "Fərdi həll planının qurulması"},
			map[string]any{"title": "İcraat", "description": "Planın peşəkar icrası"},
			map[string]any{"title": "Təsdiqləmə", "description": "Nəticələrin yoxlanılması"},
		},
		"clientsHeading": "Bizi seçənlər",
		"clients":        []any{},
		"ctaHeading":     "Maliyyə gələcəyinizi birlikdə quraq",
		"ctaButtonText":  "Əlaqə saxlayın",
		"ctaButtonUrl":   "/contact",
		"sections":       []any{},
	},
	"about": map[string]any{
		"introBadge":           "Haqqımızda",
		"introSummary":         "2017-ci ildən sahibkarlara maliyyə, mühasibatlıq, vergi və konsaltinq dəstəyi verən təşkilat.",
		"headerTitlePrefix":    "Azfin",
		"headerTitleHighlight": "Group MMC",
		"overviewTitle":        "Azfin Group MMC",
		"overviewSummary":      "2017-ci ildən sahibkarlara maliyyə, mühasibatlıq, vergi və konsaltinq dəstəyi verən təşkilat. Auditdən hüquqi xidmətlərə qədər tam spektr.",
		"overviewImage":        "",
		"missionTitle":         "Missiya",
		"missionSummary":       "Sahibkarların maliyyə və hüquqi məsələlərdə güvənli tərəfdaşı olmaq və onların inkişafı üçün doğru həlləri tətbiq etmək.",
		"missionImage":         "",
		"serviceTitle":         "Xidmət sahələri",
		"serviceSummary":       "Mühasibatlıq, audit, vergi, tender sənədləşməsi və hüquqi dəstək üzrə geniş xidmət portfeli.",
		"team":                 []any{},
		"testimonials":         []any{},
		"testimonialsTitle":    "Müştəri rəyləri",
		"testimonialsCTA":      "Siz də Azfin ailəsinə qoşulun",
		"tabs": []any{
			map[string]any{"id": "overview", "label": "İcmal"},
			map[string]any{"id": "mission", "label": "Missiya"},
			map[string]any{"id": "team", "label": "Komanda"},
		},
	},
	"services": map[string]any{
		"heroBadge":          "Xidmətlər",
		"heroTitlePrefix":    "Peşəkar",
		"heroTitleHighlight": "xidmətlərimiz",
		"heroTitleSuffix":    "",
		"heroSummary":        "Vergi, maliyyə, audit, hüquq və kadr uçotu istiqamətində tam spektrli dəstək.",
		"heroImage":          "",
		"list": []any{
			map[string]any{
				"id":          "1",
				"title":       "Vergi xidmətləri",
				"description": "Vergi risklərinin minimuma endirilməsi və hesabatların dəqiq təqdimatı.",
				"content":     "Azfin mütəxəssisləri tərəfindən vergi qanunvericiliyinə tam uyğunluğun təmin edilməsi. Biz müştərilərimizə vergi yükünün optimallaşdırılması və dövlət orqanları ilə münasibətlərin peşəkar tənzimlənməsini təklif edirik.",
				"benefits": []any{
					"Vergi hesabatlarının hazırlanması",
					"Vergi yoxlamalarına hazırlıq",
					"Vergi uçotu üzrə konsultasiya",
					"Vergi planlaması və optimallaşdırma",
				},
				"icon": "file-text",
			},
			map[string]any{
				"id":          "2",
				"title":       "Maliyyə xidmətləri",
				"description": "Biznesinizin maliyyə göstəricilərinin analizi və hesabatlılığın qurulması.",
				"content":     "Şirkətin maliyyə vəziyyətinin tam şəffaf şəkildə əks olunması üçün beynəlxalq standartlara uyğun uçot xidmətləri. Gündəlik əməliyyatlardan strateji maliyyə analizlərinə qədər tam dəstək.",
				"benefits": []any{
					"Maliyyə hesabatlarının tərtib edilməsi",
					"Mənfəət və zərərin hazırlanması",
					"Gündəlik əməliyyatların həyata keçirilməsi",
					"Maliyyə fəaliyyətinin analitikası",
				},
				"icon": "calculator",
			},
			map[string]any{
				"id":          "3",
				"title":       "Audit xidmətləri",
				"description": "Maliyyə hesabatlarının dürüstlüyünün və daxili nəzarətin təsdiqi.",
				"content":     "Beynəlxalq Audit Standartlarına (ISA) uyğun olaraq həyata keçirilən kənar və daxili audit yoxlamaları. Biz riskləri aşkarlayır və biznesin səmərəliliyini artırmaq üçün tövsiyələr veririk.",
				"benefits": []any{
					"Maliyyə hesabatlarının auditi",
					"Daxili audit xidmətləri",
					"Xüsusi məqsədli audit yoxlamaları",
					"Risk menecmenti qiymətləndirilməsi",
				},
				"icon": "search-check",
			},
			map[string]any{
				"id":          "4",
				"title":       "Hüquq xidmətləri",
				"description": "Biznes fəaliyyətinin hüquqi cəhətdən tam qorunması və dəstəklənməsi.",
				"content":     "Müqavilə münasibətlərindən korporativ məsələlərə qədər peşəkar hüquqi yardım. Biznesinizin qanunvericilik qarşısında hər hansı bir boşluq qalmaması üçün çalışırıq.",
				"benefits": []any{
					"Müqavilələrin hüquqi ekspertizası",
					"Korporativ hüquq xidmətləri",
					"Hüquqi rəylərin hazırlanması",
					"Biznesin qeydiyyatı və ləğvi",
				},
				"icon": "scale",
			},
			map[string]any{
				"id":          "5",
				"title":       "Kadr uçotu",
				"description": "Əmək qanunvericiliyinə uyğun sənədləşmə və kadr işinin təşkili.",
				"content":     "Kadr kargüzarlığının Azərbaycan Respublikasının Əmək Məcəlləsinə uyğun qurulması və idarə edilməsi. İşçi və işəgötürən arasındakı hüquqi münasibətlərin düzgün rəsmiləşdirilməsi.",
				"benefits": []any{
					"Kadr uçotunun təhlili",
					"Kadr uçotunun aparılması",
					"Əmək müqavilələrinin tərtibatı",
					"Əmrlərin və digər normativ sənədlərin hazırlanması",
				},
				"icon": "users",
			},
		},
	},
	"servicedetail": map[string]any{
		"heroBadge":         "Xidmət",
		"heroSummary":       "Bu xidmət üzrə tam məlumat və əhatə dairəsi.",
		"summaryStandard":   "Beynəlxalq standartlara uyğun",
		"summaryDuration":   "Layihədən asılı olaraq",
		"summaryCTA":        "Müraciət et",
		"content":           "",
		"benefits":          []any{},
		"scopeTitle":        "Əhatə dairəsi",
		"summaryTitle":      "Xülasə",
		"benefitsTitle":     "Xidmətə daxil olan istiqamətlər",
		"durationLabel":     "Müddət",
		"standardLabel":     "Standart",
		"consultationTitle": "Pulsuz konsultasiya üçün müraciət edin",
	},
	"blog": map[string]any{
		"heroTitlePrefix":    "Bloq və",
		"heroTitleHighlight": "xəbərlər",
		"heroSummary":        "Maliyyə, vergi və audit dünyasından aktual məqalələr.",
		"heroImage":          "",
		"blogBadge":          "Bloq",
		"readMoreText":       "Daha çox oxu",
		"loadingText":        "Yüklənir...",
		"emptyText":          "Hələlik məqalə yoxdur.",
	},
	"academy": map[string]any{
		"heroBadge":          "Akademiya",
		"heroTitlePrefix":    "Azfin",
		"heroTitleHighlight": "Akademiya",
		"heroSummary":        "Praktiki mühasibatlıq və vergi təlimləri ilə karyeranızı gücləndirin.",
		"heroImage":          "",
		"cardCTA":            "Müraciət et",
		"sidebarNote":        "Təlim sonunda sertifikat təqdim olunur.",
		"loadingText":        "Yüklənir...",
		"emptyText":          "Hələlik təlim elan olunmayıb.",
	},
	"contact": map[string]any{
		"headerTitle":      "Maliyyə gələcəyinizi",
		"headerHighlight":  "birlikdə",
		"headerSuffix":     "quraq",
		"headerSummary":    "Audit, vergi planlaması və təlimlərlə bağlı suallar üçün komandamız 09:00-18:00 arası cavab verir.",
		"contactBadge":     "Əlaqə",
		"address":          "Bakı, Nizami küçəsi 123",
		"phone":            "+994 50 200 00 00",
		"email":            "office@azfin.az",
		"hours":            "Bazar ertəsi - Cümə: 09:00 - 18:00",
		"formTitle":        "Əlaqə forması",
		"formSubtitle":     "Sorğunuzu göndərin, ən qısa zamanda sizinlə əlaqə saxlayaq.",
		"formNameLabel":    "Ad, soyad",
		"formEmailLabel":   "E-poçt",
		"formServiceLabel": "Xidmət",
		"formMessageLabel": "Mesaj",
		"formButtonText":   "Göndər",
		"socialTitle":      "Sosial media",
	},
	"forms": map[string]any{
		"auditFormName":             "audit",
		"auditModalTitle":           "Pulsuz audit müraciəti",
		"generalModalTitle":         "Xidmət müraciəti",
		"auditSelectedServiceLabel": "Seçilən xidmət",
		"auditBusinessTypeLabel":    "Fəaliyyət növü",
		"auditTaxTypeLabel":         "Vergi növü",
		"auditClientStatusLabel":    "Müştəri statusu",
		"auditNameLabel":            "Ad, soyad",
		"auditPhoneLabel":           "Telefon",
		"auditEmailLabel":           "E-poçt",
		"auditSelectPlaceholder":    "Seçin...",
		"auditBusinessTypeOptions":  []any{"MMC", "Fərdi sahibkar", "QSC", "Digər"},
		"auditTaxTypeOptions":       []any{"Sadələşdirilmiş", "Mənfəət", "ƏDV ödəyicisi"},
		"auditClientStatusOptions":  []any{"Yeni müştəri", "Mövcud müştəri"},
		"auditSubmitButton":         "Göndər",
		"auditSubmitLoading":        "Göndərilir...",
		"auditSuccessTitle":         "Müraciətiniz qəbul edildi",
		"auditSuccessMessage":       "Komandamız ən qısa zamanda sizinlə əlaqə saxlayacaq.",
		"auditSuccessButton":        "Bağla",
		"trainingFormName":          "training",
		"trainingModalTitle":        "Təlimə müraciət",
		"trainingIntroTemplate":     "{trainingTitle} təliminə qeydiyyat üçün məlumatlarınızı daxil edin.",
		"trainingNameLabel":         "Ad, soyad",
		"trainingPhoneLabel":        "Telefon",
		"trainingEmailLabel":        "E-poçt",
		"trainingNoteLabel":         "Qeyd",
		"trainingSubmitButton":      "Göndər",
		"trainingSubmitLoading":     "Göndərilir...",
		"trainingSuccessTitle":      "Qeydiyyat tamamlandı",
		"trainingSuccessMessage":    "Təlim başlamazdan əvvəl sizinlə əlaqə saxlanılacaq.",
		"trainingSuccessButton":     "Bağla",
		"contactFormName":           "contact",
		"contactPhoneLabel":         "Telefon",
		"contactServiceOptions":     []any{"Audit", "Mühasibat", "Vergi", "Akademiya"},
		"contactSubmitLoading":      "Göndərilir...",
		"contactSuccessTitle":       "Mesajınız göndərildi",
		"contactSuccessMessage":     "Ən qısa zamanda cavablandıracağıq.",
		"contactSuccessButton":      "Bağla",
	},
	"navigation": map[string]any{
		"primaryCTA": "ƏLAQƏ",
		"items": []any{
			map[string]any{"label": "ANA SƏHİFƏ", "path": "/"},
			map[string]any{"label": "HAQQIMIZDA", "path": "/about"},
			map[string]any{
				"label": "XİDMƏTLƏR",
				"path":  "/services",
				"children": []any{
					map[string]any{"label": "Vergi xidmətləri", "path": "/services/1"},
					map[string]any{"label": "Maliyyə xidmətləri", "path": "/services/2"},
					map[string]any{"label": "Audit xidmətləri", "path": "/services/3"},
					map[string]any{"label": "Hüquq xidmətləri", "path": "/services/4"},
					map[string]any{"label": "Kadr uçotu", "path": "/services/5"},
				},
			},
			map[string]any{"label": "BLOQ VƏ XƏBƏRLƏR", "path": "/blog"},
			map[string]any{"label": "AKADEMİYA", "path": "/academy"},
			map[string]any{"label": "AUDİTTV", "path": "https://audittv.az/", "isExternal": true},
		},
	},
	"footer": map[string]any{
		"brandText":   "AZFIN",
		"description": "Maliyyə, vergi və audit sahəsində etibarlı tərəfdaşınız.",
		"navTitle":    "Naviqasiya",
		"navLinks": []any{
			map[string]any{"label": "Ana səhifə", "path": "/"},
			map[string]any{"label": "Haqqımızda", "path": "/about"},
			map[string]any{"label": "Bloq", "path": "/blog"},
			map[string]any{"label": "Əlaqə", "path": "/contact"},
		},
		"servicesTitle": "Xidmətlər",
		"serviceLinks": []any{
			map[string]any{"label": "Vergi xidmətləri", "path": "/services/1"},
			map[string]any{"label": "Maliyyə xidmətləri", "path": "/services/2"},
			map[string]any{"label": "Audit xidmətləri", "path": "/services/3"},
		},
		"academyTitle":       "Akademiya",
		"academyLinks":       []any{},
		"academyAllLabel":    "Bütün təlimlər",
		"academyLoadingText": "Yüklənir...",
		"academyEmptyText":   "Təlim yoxdur",
		"socialHint":         "Bizi izləyin",
	},
	"social": map[string]any{
		"title": "Sosial media",
		"links": []any{
			map[string]any{"icon": "facebook", "label": "Facebook", "url": "https://facebook.com/azfin.az"},
			map[string]any{"icon": "instagram", "label": "Instagram", "url": "https://instagram.com/azfin.az"},
			map[string]any{"icon": "linkedin", "label": "LinkedIn", "url": "https://linkedin.com/company/azfin"},
		},
	},
}

// DefaultDocument returns a deep copy of the canonical default content
// tree. Callers may mutate the result freely.
func DefaultDocument() Document {
	return DeepCopy(defaultDocument)
}

// MergeWithDefaults merges an override document onto the canonical
// defaults. This is the read path for site content everywhere.
func MergeWithDefaults(override any) Document {
	return Merge(DefaultDocument(), override)
}
