package store

import (
	"context"
	"os"
	"testing"
)

// These tests need a reachable Postgres. Set TEST_DATABASE_URL to run them.
func openTestStore(t *testing.T) *PostgresStore {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	db, err := Open(ctx, url)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return NewPostgresStore(db)
}

func TestSiteSettingsRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := openTestStore(t)
	ctx := context.Background()

	content := map[string]any{
		"home": map[string]any{"heroTitlePrefix": "Test"},
	}
	if err := s.UpsertSiteSettings(ctx, content); err != nil {
		t.Fatalf("upsert site settings: %v", err)
	}

	got, err := s.GetSiteSettings(ctx)
	if err != nil {
		t.Fatalf("get site settings: %v", err)
	}
	home, ok := got["home"].(map[string]any)
	if !ok {
		t.Fatalf("expected home section, got %#v", got)
	}
	if home["heroTitlePrefix"] != "Test" {
		t.Fatalf("heroTitlePrefix = %v, want Test", home["heroTitlePrefix"])
	}
}

func TestBlogPostLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := openTestStore(t)
	ctx := context.Background()

	post := BlogPost{
		ID:       "it-post-1",
		Title:    "Vergi dəyişiklikləri",
		Excerpt:  "Qısa icmal",
		Content:  "Tam mətn",
		Date:     "2025-01-15",
		Author:   "Azfin",
		Category: "Vergi",
		Status:   "draft",
	}
	if err := s.UpsertBlogPost(ctx, post); err != nil {
		t.Fatalf("upsert blog post: %v", err)
	}
	t.Cleanup(func() { _, _ = s.DeleteBlogPost(ctx, post.ID) })

	published, err := s.ListBlogPosts(ctx, true)
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	for _, item := range published {
		if item.ID == post.ID {
			t.Fatalf("draft post %s leaked into published list", post.ID)
		}
	}

	post.Status = "published"
	if err := s.UpsertBlogPost(ctx, post); err != nil {
		t.Fatalf("publish post: %v", err)
	}
	got, err := s.GetBlogPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("get blog post: %v", err)
	}
	if got == nil || got.Status != "published" {
		t.Fatalf("expected published post, got %#v", got)
	}

	deleted, err := s.DeleteBlogPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("delete blog post: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report a removed row")
	}
}

func TestTrainingSyllabusRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := openTestStore(t)
	ctx := context.Background()

	item := Training{
		ID:        "it-training-1",
		Title:     "ACCA hazırlıq",
		Status:    "upcoming",
		Syllabus:  []string{"Modul 1", "Modul 2"},
		CertLabel: "Sertifikat",
	}
	if err := s.UpsertTraining(ctx, item); err != nil {
		t.Fatalf("upsert training: %v", err)
	}
	t.Cleanup(func() { _, _ = s.DeleteTraining(ctx, item.ID) })

	got, err := s.GetTraining(ctx, item.ID)
	if err != nil {
		t.Fatalf("get training: %v", err)
	}
	if got == nil {
		t.Fatal("training not found after upsert")
	}
	if len(got.Syllabus) != 2 || got.Syllabus[0] != "Modul 1" {
		t.Fatalf("syllabus = %#v", got.Syllabus)
	}
	if got.CertLabel != "Sertifikat" {
		t.Fatalf("certLabel = %q", got.CertLabel)
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.InsertSubmission(ctx, FormSubmission{
		Type:     "contact",
		FormData: map[string]any{"name": "Test", "email": "test@example.com"},
	})
	if err != nil {
		t.Fatalf("insert submission: %v", err)
	}
	t.Cleanup(func() { _, _ = s.DeleteSubmission(ctx, created.ID) })

	if created.ID == 0 {
		t.Fatal("expected generated submission id")
	}
	if created.Status != "new" {
		t.Fatalf("status = %q, want new", created.Status)
	}

	updated, err := s.UpdateSubmissionStatus(ctx, created.ID, "read")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !updated {
		t.Fatal("expected status update to touch a row")
	}

	got, err := s.GetSubmission(ctx, created.ID)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if got == nil || got.Status != "read" {
		t.Fatalf("expected read submission, got %#v", got)
	}
}
