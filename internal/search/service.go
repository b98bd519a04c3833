package search

import (
	"context"
	"log"
	"strings"

	"github.com/aliyabuz25/AzfinContainer/internal/store"
)

// PostFinder is the relational fallback used when Meilisearch is down.
type PostFinder interface {
	SearchBlogPosts(ctx context.Context, query string) ([]store.BlogPost, error)
}

// Service is the facade that tries the search engine first and falls
// back to a direct database search.
type Service struct {
	engine Engine
	finder PostFinder
}

// NewService creates a search service. meili may be nil if Meilisearch
// is not configured.
func NewService(meili *Meili, finder PostFinder) *Service {
	s := &Service{finder: finder}
	if meili != nil {
		s.engine = meili
	}
	return s
}

// Search tries the engine if healthy, otherwise queries the database.
func (s *Service) Search(ctx context.Context, q Query) Response {
	if s.engine != nil && s.engine.Healthy() {
		results, total, err := s.engine.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		log.Printf("search: meilisearch error, falling back to database: %v", err)
	}

	posts, err := s.finder.SearchBlogPosts(ctx, q.Text)
	if err != nil {
		log.Printf("search: database fallback error: %v", err)
		return Response{Results: []Result{}, Total: 0, Query: q.Text}
	}

	results := make([]Result, 0, len(posts))
	for _, post := range posts {
		if q.Category != "" && post.Category != q.Category {
			continue
		}
		results = append(results, Result{
			ID:       post.ID,
			Title:    post.Title,
			Snippet:  snippetOf(post),
			Category: post.Category,
			Date:     post.Date,
		})
	}
	return Response{Results: results, Total: len(results), Query: q.Text}
}

// IndexPost pushes a post to Meilisearch (fire-and-forget).
func (s *Service) IndexPost(post store.BlogPost) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	go func() {
		if err := s.engine.IndexPost(recordOf(post)); err != nil {
			log.Printf("search: index post %s: %v", post.ID, err)
		}
	}()
}

// DeletePost removes a post from the search index (fire-and-forget).
func (s *Service) DeletePost(id string) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	go func() {
		if err := s.engine.DeletePost(id); err != nil {
			log.Printf("search: delete post %s: %v", id, err)
		}
	}()
}

// Reindex reads all published posts from the database and pushes them to
// Meilisearch. Called once at startup when the engine is healthy.
func (s *Service) Reindex(ctx context.Context) {
	if s.engine == nil || !s.engine.Healthy() {
		return
	}
	posts, err := s.finder.SearchBlogPosts(ctx, "")
	if err != nil {
		log.Printf("search: reindex load failed: %v", err)
		return
	}
	records := make([]PostRecord, 0, len(posts))
	for _, post := range posts {
		records = append(records, recordOf(post))
	}
	if err := s.engine.IndexPosts(records); err != nil {
		log.Printf("search: reindex posts: %v", err)
	}
}

func recordOf(post store.BlogPost) PostRecord {
	return PostRecord{
		ID:       post.ID,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Content:  post.Content,
		Category: post.Category,
		Status:   post.Status,
		Date:     post.Date,
	}
}

func snippetOf(post store.BlogPost) string {
	text := post.Excerpt
	if strings.TrimSpace(text) == "" {
		text = post.Content
	}
	runes := []rune(text)
	if len(runes) > 160 {
		return string(runes[:160]) + "…"
	}
	return text
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
