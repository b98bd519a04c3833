package app

import (
	"context"
	"encoding/xml"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aliyabuz25/AzfinContainer/internal/config"
	"github.com/aliyabuz25/AzfinContainer/internal/content"
	"github.com/aliyabuz25/AzfinContainer/internal/email"
	"github.com/aliyabuz25/AzfinContainer/internal/navlink"
	"github.com/aliyabuz25/AzfinContainer/internal/reconcile"
	"github.com/aliyabuz25/AzfinContainer/internal/search"
	"github.com/aliyabuz25/AzfinContainer/internal/session"
	"github.com/aliyabuz25/AzfinContainer/internal/store"
	"github.com/aliyabuz25/AzfinContainer/internal/util"
)

type dataStore interface {
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]store.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*store.BlogPost, error)
	UpsertBlogPost(ctx context.Context, post store.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) (bool, error)
	ListTrainings(ctx context.Context) ([]store.Training, error)
	GetTraining(ctx context.Context, id string) (*store.Training, error)
	UpsertTraining(ctx context.Context, item store.Training) error
	DeleteTraining(ctx context.Context, id string) (bool, error)
	InsertSubmission(ctx context.Context, submission store.FormSubmission) (store.FormSubmission, error)
	ListSubmissions(ctx context.Context, submissionType string) ([]store.FormSubmission, error)
	GetSubmission(ctx context.Context, id int64) (*store.FormSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, id int64, status string) (bool, error)
	DeleteSubmission(ctx context.Context, id int64) (bool, error)
	Ping(ctx context.Context) error
}

// searcher is the optional full-text layer over published blog posts.
type searcher interface {
	Search(ctx context.Context, q search.Query) search.Response
	IndexPost(post store.BlogPost)
	DeletePost(id string)
}

type Service struct {
	cfg      config.Config
	store    dataStore
	rec      *reconcile.Reconciler
	sessions session.Store
	mail     *email.Service
	search   searcher
	links    *navlink.Resolver

	adminHash []byte
}

func New(cfg config.Config, dataStore dataStore, rec *reconcile.Reconciler, sessions session.Store, mail *email.Service, searchSvc searcher) *Service {
	return &Service{
		cfg:       cfg,
		store:     dataStore,
		rec:       rec,
		sessions:  sessions,
		mail:      mail,
		search:    searchSvc,
		links:     navlink.NewResolver(cfg.PublicSiteHost()),
		adminHash: adminPasswordHash(cfg),
	}
}

// adminPasswordHash prefers the pre-hashed credential and falls back to
// hashing the plain one at startup for dev setups.
func adminPasswordHash(cfg config.Config) []byte {
	if cfg.AdminPasswordHash != "" {
		return []byte(cfg.AdminPasswordHash)
	}
	if cfg.AdminPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("app: hash admin password: %v", err)
		return nil
	}
	return hash
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Auth

type LoginResult struct {
	User        map[string]any `json:"user"`
	AccessToken string         `json:"access_token"`
}

var errBadCredentials = domainError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "İstifadəçi adı və ya şifrə yanlışdır", nil)

func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if s.adminHash == nil {
		return LoginResult{}, domainError(http.StatusServiceUnavailable, "AUTH_UNAVAILABLE", "Admin credentials not configured", nil)
	}
	if username != s.cfg.AdminUsername {
		return LoginResult{}, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return LoginResult{}, errBadCredentials
	}

	token, err := session.NewToken()
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	if err := s.sessions.Save(ctx, token, username, s.cfg.AccessTTL); err != nil {
		return LoginResult{}, fmt.Errorf("save session: %w", err)
	}

	return LoginResult{
		User:        map[string]any{"username": username, "role": "admin"},
		AccessToken: token,
	}, nil
}

// Authenticate resolves a bearer token to the admin username.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	username, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return "", err
	}
	return username, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Site content

func (s *Service) SiteContent(ctx context.Context) (content.Document, error) {
	return s.rec.SiteContent(ctx)
}

func (s *Service) UpdateSiteContent(ctx context.Context, incoming any) (content.Document, error) {
	return s.rec.WriteSiteContent(ctx, incoming)
}

// SMTP settings

func (s *Service) SMTPSettings(ctx context.Context) (map[string]any, error) {
	doc, err := s.rec.SMTPSettings(ctx)
	if err != nil {
		return nil, err
	}
	return email.NormalizeSettings(doc).Document(), nil
}

func (s *Service) UpdateSMTPSettings(ctx context.Context, raw map[string]any) (map[string]any, error) {
	normalized := email.NormalizeSettings(raw).Document()
	if err := s.rec.WriteSMTPSettings(ctx, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Blog

var blogStatuses = map[string]bool{"published": true, "draft": true}

func (s *Service) ListBlogPosts(ctx context.Context, includeDrafts bool) ([]store.BlogPost, error) {
	return s.store.ListBlogPosts(ctx, !includeDrafts)
}

func (s *Service) SearchBlogPosts(ctx context.Context, text, category string, limit, offset int) search.Response {
	return s.search.Search(ctx, search.Query{Text: text, Category: category, Limit: limit, Offset: offset})
}

func (s *Service) GetBlogPost(ctx context.Context, id string) (*store.BlogPost, error) {
	post, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Blog post not found", nil)
	}
	return post, nil
}

// SaveBlogPost accepts the loosely typed admin payload, tolerating the
// legacy key spellings older panel builds sent.
func (s *Service) SaveBlogPost(ctx context.Context, payload map[string]any) (store.BlogPost, error) {
	post := store.BlogPost{
		ID:       content.NormalizeString(payload["id"]),
		Title:    content.NormalizeString(payload["title"]),
		Excerpt:  content.NormalizeString(payload["excerpt"]),
		Content:  firstString(payload, "content", "body"),
		Date:     firstString(payload, "date", "published_at", "created_at"),
		Author:   content.NormalizeString(payload["author"]),
		Image:    firstString(payload, "image", "image_url", "cover_image"),
		Category: content.NormalizeString(payload["category"]),
		Status:   content.NormalizeStringOr(payload["status"], "published"),
	}
	if post.Title == "" {
		return store.BlogPost{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	if !blogStatuses[post.Status] {
		post.Status = "published"
	}
	if post.ID == "" {
		post.ID = util.NewID()
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}

	if err := s.store.UpsertBlogPost(ctx, post); err != nil {
		return store.BlogPost{}, err
	}
	if s.search != nil {
		if post.Status == "published" {
			s.search.IndexPost(post)
		} else {
			s.search.DeletePost(post.ID)
		}
	}
	return post, nil
}

func (s *Service) DeleteBlogPost(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteBlogPost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainError(http.StatusNotFound, "NOT_FOUND", "Blog post not found", nil)
	}
	if s.search != nil {
		s.search.DeletePost(id)
	}
	return nil
}

// Trainings

var trainingStatuses = map[string]bool{"upcoming": true, "ongoing": true, "completed": true}

func (s *Service) ListTrainings(ctx context.Context) ([]store.Training, error) {
	return s.store.ListTrainings(ctx)
}

func (s *Service) GetTraining(ctx context.Context, id string) (*store.Training, error) {
	item, err := s.store.GetTraining(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Training not found", nil)
	}
	return item, nil
}

func (s *Service) SaveTraining(ctx context.Context, payload map[string]any) (store.Training, error) {
	item := store.Training{
		ID:          content.NormalizeString(payload["id"]),
		Title:       content.NormalizeString(payload["title"]),
		Description: content.NormalizeString(payload["description"]),
		FullContent: firstString(payload, "fullContent", "full_content"),
		Syllabus:    content.NormalizeStringList(payload["syllabus"]),
		StartDate:   firstString(payload, "startDate", "start_date"),
		Duration:    content.NormalizeString(payload["duration"]),
		Level:       content.NormalizeString(payload["level"]),
		Image:       content.NormalizeString(payload["image"]),
		Status:      strings.ToLower(content.NormalizeStringOr(payload["status"], "upcoming")),

		CertLabel:     content.NormalizeString(payload["certLabel"]),
		InfoTitle:     content.NormalizeString(payload["infoTitle"]),
		AboutTitle:    content.NormalizeString(payload["aboutTitle"]),
		SyllabusTitle: content.NormalizeString(payload["syllabusTitle"]),
		DurationLabel: content.NormalizeString(payload["durationLabel"]),
		StartLabel:    content.NormalizeString(payload["startLabel"]),
		StatusLabel:   content.NormalizeString(payload["statusLabel"]),
		SidebarNote:   content.NormalizeString(payload["sidebarNote"]),
		HighlightWord: content.NormalizeString(payload["highlightWord"]),
	}
	if item.Title == "" {
		return store.Training{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	if !trainingStatuses[item.Status] {
		item.Status = "upcoming"
	}
	if item.ID == "" {
		item.ID = util.NewID()
	}

	if err := s.store.UpsertTraining(ctx, item); err != nil {
		return store.Training{}, err
	}
	return item, nil
}

func (s *Service) DeleteTraining(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteTraining(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainError(http.StatusNotFound, "NOT_FOUND", "Training not found", nil)
	}
	return nil
}

// Form submissions

var submissionTypes = map[string]bool{"audit": true, "training": true, "contact": true, "other": true}
var submissionStatuses = map[string]bool{"new": true, "read": true, "archived": true}

// SubmissionResult reports the stored submission together with the
// notification outcome. The submission is committed before any mail is
// attempted, so a broken SMTP setup never loses a lead.
type SubmissionResult struct {
	Submission store.FormSubmission `json:"submission"`
	MailSent   bool                 `json:"mailSent"`
	MailInfo   string               `json:"mailInfo,omitempty"`
}

func (s *Service) CreateSubmission(ctx context.Context, submissionType string, formData map[string]any) (SubmissionResult, error) {
	if !submissionTypes[submissionType] {
		return SubmissionResult{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown submission type", map[string]any{"type": submissionType})
	}
	if len(formData) == 0 {
		return SubmissionResult{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "form_data is required", nil)
	}

	saved, err := s.store.InsertSubmission(ctx, store.FormSubmission{
		Type:     submissionType,
		FormData: formData,
	})
	if err != nil {
		return SubmissionResult{}, err
	}

	result := SubmissionResult{Submission: saved}
	settingsDoc, err := s.rec.SMTPSettings(ctx)
	if err != nil {
		log.Printf("app: smtp settings unavailable for submission %d: %v", saved.ID, err)
		return result, nil
	}
	settings := email.NormalizeSettings(settingsDoc)
	if !settings.Configured() {
		return result, nil
	}

	info, err := s.mail.SendSubmissionNotification(settings, email.Submission{
		ID:        saved.ID,
		Type:      saved.Type,
		FormData:  saved.FormData,
		CreatedAt: saved.CreatedAt,
	})
	if err != nil {
		log.Printf("app: notification for submission %d failed: %v", saved.ID, err)
		result.MailInfo = err.Error()
		return result, nil
	}
	result.MailSent = true
	result.MailInfo = info
	return result, nil
}

func (s *Service) ListSubmissions(ctx context.Context, submissionType string) ([]store.FormSubmission, error) {
	if submissionType != "" && !submissionTypes[submissionType] {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown submission type", map[string]any{"type": submissionType})
	}
	return s.store.ListSubmissions(ctx, submissionType)
}

func (s *Service) GetSubmission(ctx context.Context, id int64) (*store.FormSubmission, error) {
	item, err := s.store.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Submission not found", nil)
	}
	return item, nil
}

func (s *Service) UpdateSubmissionStatus(ctx context.Context, id int64, status string) (*store.FormSubmission, error) {
	if !submissionStatuses[status] {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown submission status", map[string]any{"status": status})
	}
	updated, err := s.store.UpdateSubmissionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Submission not found", nil)
	}
	return s.store.GetSubmission(ctx, id)
}

func (s *Service) DeleteSubmission(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteSubmission(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainError(http.StatusNotFound, "NOT_FOUND", "Submission not found", nil)
	}
	return nil
}

// Sitemap

func (s *Service) Sitemap() (map[string]any, error) {
	return s.rec.Sitemap()
}

func (s *Service) UpdateSitemap(doc map[string]any) error {
	return s.rec.WriteSitemap(doc)
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML renders the crawler-facing XML sitemap: navigation links
// classified through the resolver (external targets are skipped), plus a
// URL per published blog post and per training.
func (s *Service) SitemapXML(ctx context.Context) ([]byte, error) {
	paths := []string{"/"}
	seen := map[string]bool{"/": true}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	doc, err := s.rec.SiteContent(ctx)
	if err != nil {
		return nil, err
	}
	nav, _ := doc["navigation"].(map[string]any)
	var walk func(items []any)
	walk = func(items []any) {
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			force := content.NormalizeBool(item["isExternal"], false)
			link := s.links.Resolve(content.NormalizeString(item["path"]), force)
			if link != nil && !link.IsExternal {
				add(link.Path)
			}
			walk(content.NormalizeSlice(item["children"]))
		}
	}
	walk(content.NormalizeSlice(nav["items"]))

	posts, err := s.store.ListBlogPosts(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		add("/blog/" + post.ID)
	}

	trainings, err := s.store.ListTrainings(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range trainings {
		add("/academy/" + item.ID)
	}

	base := strings.TrimRight(s.cfg.PublicSiteURL, "/")
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// firstString returns the first non-empty trimmed string among the given
// payload keys.
func firstString(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := content.NormalizeString(payload[key]); value != "" {
			return value
		}
	}
	return ""
}
