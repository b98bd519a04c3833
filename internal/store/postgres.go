package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// Ping verifies the database connection is alive
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) GetSiteSettings(ctx context.Context) (map[string]any, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT content FROM site_settings WHERE id=$1`, SiteSettingsID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("decode site settings: %w", err)
	}
	return content, nil
}

func (s *PostgresStore) UpsertSiteSettings(ctx context.Context, content map[string]any) error {
	encoded, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode site settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_settings (id, content)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET content=EXCLUDED.content, updated_at=NOW()
	`, SiteSettingsID, string(encoded))
	if err != nil {
		return fmt.Errorf("upsert site settings: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetSMTPSettings(ctx context.Context) (map[string]any, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT settings FROM smtp_settings WHERE id=$1`, SMTPSettingsID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get smtp settings: %w", err)
	}
	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode smtp settings: %w", err)
	}
	return settings, nil
}

func (s *PostgresStore) UpsertSMTPSettings(ctx context.Context, settings map[string]any) error {
	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode smtp settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO smtp_settings (id, settings)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET settings=EXCLUDED.settings, updated_at=NOW()
	`, SMTPSettingsID, string(encoded))
	if err != nil {
		return fmt.Errorf("upsert smtp settings: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, excerpt, content, date, author, image, category, status, created_at
		FROM blog_posts
		WHERE (NOT $1::boolean OR status='published')
		ORDER BY created_at DESC
	`, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	items := make([]BlogPost, 0)
	for rows.Next() {
		var item BlogPost
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Excerpt,
			&item.Content,
			&item.Date,
			&item.Author,
			&item.Image,
			&item.Category,
			&item.Status,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetBlogPost(ctx context.Context, id string) (*BlogPost, error) {
	var item BlogPost
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, excerpt, content, date, author, image, category, status, created_at
		FROM blog_posts
		WHERE id=$1
	`, id).Scan(
		&item.ID,
		&item.Title,
		&item.Excerpt,
		&item.Content,
		&item.Date,
		&item.Author,
		&item.Image,
		&item.Category,
		&item.Status,
		&item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &item, nil
}

func (s *PostgresStore) UpsertBlogPost(ctx context.Context, post BlogPost) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blog_posts (id, title, excerpt, content, date, author, image, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title=EXCLUDED.title,
			excerpt=EXCLUDED.excerpt,
			content=EXCLUDED.content,
			date=EXCLUDED.date,
			author=EXCLUDED.author,
			image=EXCLUDED.image,
			category=EXCLUDED.category,
			status=EXCLUDED.status
	`, post.ID, post.Title, post.Excerpt, post.Content, post.Date, post.Author, post.Image, post.Category, post.Status)
	if err != nil {
		return fmt.Errorf("upsert blog post: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete blog post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete blog post rows: %w", err)
	}
	return affected > 0, nil
}

// SearchBlogPosts is the relational fallback used when the search engine is
// unreachable. Matches published posts against title, excerpt and content.
func (s *PostgresStore) SearchBlogPosts(ctx context.Context, query string) ([]BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, excerpt, content, date, author, image, category, status, created_at
		FROM blog_posts
		WHERE status='published'
		  AND (title ILIKE '%' || $1 || '%' OR excerpt ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
	`, query)
	if err != nil {
		return nil, fmt.Errorf("search blog posts: %w", err)
	}
	defer rows.Close()

	items := make([]BlogPost, 0)
	for rows.Next() {
		var item BlogPost
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Excerpt,
			&item.Content,
			&item.Date,
			&item.Author,
			&item.Image,
			&item.Category,
			&item.Status,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) ListTrainings(ctx context.Context) ([]Training, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, full_content, duration, level, start_date, status, image, syllabus, presentation, created_at
		FROM trainings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	defer rows.Close()

	items := make([]Training, 0)
	for rows.Next() {
		item, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trainings: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetTraining(ctx context.Context, id string) (*Training, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, full_content, duration, level, start_date, status, image, syllabus, presentation, created_at
		FROM trainings
		WHERE id=$1
	`, id)
	item, err := scanTraining(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTraining(row rowScanner) (Training, error) {
	var item Training
	var syllabusRaw, presentationRaw []byte
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.FullContent,
		&item.Duration,
		&item.Level,
		&item.StartDate,
		&item.Status,
		&item.Image,
		&syllabusRaw,
		&presentationRaw,
		&item.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Training{}, err
		}
		return Training{}, fmt.Errorf("scan training: %w", err)
	}
	if err := json.Unmarshal(syllabusRaw, &item.Syllabus); err != nil {
		item.Syllabus = []string{}
	}
	var presentation trainingPresentation
	if err := json.Unmarshal(presentationRaw, &presentation); err == nil {
		presentation.apply(&item)
	}
	return item, nil
}

// trainingPresentation holds the optional detail-page copy stored as a
// single JSONB column rather than ten sparse text columns.
type trainingPresentation struct {
	CertLabel     string `json:"certLabel,omitempty"`
	InfoTitle     string `json:"infoTitle,omitempty"`
	AboutTitle    string `json:"aboutTitle,omitempty"`
	SyllabusTitle string `json:"syllabusTitle,omitempty"`
	DurationLabel string `json:"durationLabel,omitempty"`
	StartLabel    string `json:"startLabel,omitempty"`
	StatusLabel   string `json:"statusLabel,omitempty"`
	SidebarNote   string `json:"sidebarNote,omitempty"`
	HighlightWord string `json:"highlightWord,omitempty"`
}

func (p trainingPresentation) apply(item *Training) {
	item.CertLabel = p.CertLabel
	item.InfoTitle = p.InfoTitle
	item.AboutTitle = p.AboutTitle
	item.SyllabusTitle = p.SyllabusTitle
	item.DurationLabel = p.DurationLabel
	item.StartLabel = p.StartLabel
	item.StatusLabel = p.StatusLabel
	item.SidebarNote = p.SidebarNote
	item.HighlightWord = p.HighlightWord
}

func presentationOf(item Training) trainingPresentation {
	return trainingPresentation{
		CertLabel:     item.CertLabel,
		InfoTitle:     item.InfoTitle,
		AboutTitle:    item.AboutTitle,
		SyllabusTitle: item.SyllabusTitle,
		DurationLabel: item.DurationLabel,
		StartLabel:    item.StartLabel,
		StatusLabel:   item.StatusLabel,
		SidebarNote:   item.SidebarNote,
		HighlightWord: item.HighlightWord,
	}
}

func (s *PostgresStore) UpsertTraining(ctx context.Context, item Training) error {
	syllabus := item.Syllabus
	if syllabus == nil {
		syllabus = []string{}
	}
	encodedSyllabus, err := json.Marshal(syllabus)
	if err != nil {
		return fmt.Errorf("encode syllabus: %w", err)
	}
	encodedPresentation, err := json.Marshal(presentationOf(item))
	if err != nil {
		return fmt.Errorf("encode presentation: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trainings (id, title, description, full_content, duration, level, start_date, status, image, syllabus, presentation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11::jsonb)
		ON CONFLICT (id) DO UPDATE SET
			title=EXCLUDED.title,
			description=EXCLUDED.description,
			full_content=EXCLUDED.full_content,
			duration=EXCLUDED.duration,
			level=EXCLUDED.level,
			start_date=EXCLUDED.start_date,
			status=EXCLUDED.status,
			image=EXCLUDED.image,
			syllabus=EXCLUDED.syllabus,
			presentation=EXCLUDED.presentation
	`, item.ID, item.Title, item.Description, item.FullContent, item.Duration, item.Level, item.StartDate, item.Status, item.Image, string(encodedSyllabus), string(encodedPresentation))
	if err != nil {
		return fmt.Errorf("upsert training: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteTraining(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM trainings WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete training: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete training rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) InsertSubmission(ctx context.Context, submission FormSubmission) (FormSubmission, error) {
	formData := submission.FormData
	if formData == nil {
		formData = map[string]any{}
	}
	encoded, err := json.Marshal(formData)
	if err != nil {
		return FormSubmission{}, fmt.Errorf("encode form data: %w", err)
	}
	status := submission.Status
	if status == "" {
		status = "new"
	}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO form_submissions (type, form_data, status)
		VALUES ($1, $2::jsonb, $3)
		RETURNING id, created_at
	`, submission.Type, string(encoded), status).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return FormSubmission{}, fmt.Errorf("insert submission: %w", err)
	}
	submission.FormData = formData
	submission.Status = status
	return submission, nil
}

func (s *PostgresStore) ListSubmissions(ctx context.Context, submissionType string) ([]FormSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, form_data, status, created_at
		FROM form_submissions
		WHERE ($1='' OR type=$1)
		ORDER BY created_at DESC
	`, submissionType)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	items := make([]FormSubmission, 0)
	for rows.Next() {
		var item FormSubmission
		var raw []byte
		if err := rows.Scan(&item.ID, &item.Type, &raw, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if err := json.Unmarshal(raw, &item.FormData); err != nil {
			item.FormData = map[string]any{}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id int64) (*FormSubmission, error) {
	var item FormSubmission
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT id, type, form_data, status, created_at
		FROM form_submissions
		WHERE id=$1
	`, id).Scan(&item.ID, &item.Type, &raw, &item.Status, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if err := json.Unmarshal(raw, &item.FormData); err != nil {
		item.FormData = map[string]any{}
	}
	return &item, nil
}

func (s *PostgresStore) UpdateSubmissionStatus(ctx context.Context, id int64, status string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE form_submissions SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update submission status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update submission status rows: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStore) DeleteSubmission(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM form_submissions WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete submission: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete submission rows: %w", err)
	}
	return affected > 0, nil
}
