package store

import "time"

// SiteSettingsID is the fixed id of the singleton site content row.
const SiteSettingsID = 1

// SMTPSettingsID is the fixed id of the singleton SMTP settings row.
const SMTPSettingsID = 1

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Author    string    `json:"author"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Training struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FullContent string   `json:"fullContent"`
	Syllabus    []string `json:"syllabus"`
	StartDate   string   `json:"startDate"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`

	// Optional per-training presentation overrides
	CertLabel     string    `json:"certLabel,omitempty"`
	InfoTitle     string    `json:"infoTitle,omitempty"`
	AboutTitle    string    `json:"aboutTitle,omitempty"`
	SyllabusTitle string    `json:"syllabusTitle,omitempty"`
	DurationLabel string    `json:"durationLabel,omitempty"`
	StartLabel    string    `json:"startLabel,omitempty"`
	StatusLabel   string    `json:"statusLabel,omitempty"`
	SidebarNote   string    `json:"sidebarNote,omitempty"`
	HighlightWord string    `json:"highlightWord,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FormSubmission struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	FormData  map[string]any `json:"form_data"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
