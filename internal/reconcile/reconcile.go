// Package reconcile keeps the relational rows and the local snapshot
// files describing the same document in agreement. Snapshot files win on
// read; writes go to the database first and to the snapshot best-effort.
package reconcile

import (
	"context"
	"fmt"
	"log"

	"github.com/aliyabuz25/AzfinContainer/internal/content"
	"github.com/aliyabuz25/AzfinContainer/internal/snapshot"
)

// SettingsStore is the slice of the database layer the reconciler needs.
type SettingsStore interface {
	GetSiteSettings(ctx context.Context) (map[string]any, error)
	UpsertSiteSettings(ctx context.Context, doc map[string]any) error
	GetSMTPSettings(ctx context.Context) (map[string]any, error)
	UpsertSMTPSettings(ctx context.Context, doc map[string]any) error
}

// Paths names the snapshot files the reconciler maintains.
type Paths struct {
	Content string
	SMTP    string
	Sitemap string
}

type Reconciler struct {
	store SettingsStore
	paths Paths
}

func New(store SettingsStore, paths Paths) *Reconciler {
	return &Reconciler{store: store, paths: paths}
}

// SiteContent returns the effective site content: the snapshot file if
// present, otherwise the database row, merged over the built-in defaults.
// When a sitemap snapshot exists its navigation section overrides the
// content's own navigation. A database outage degrades to the best
// available local data instead of failing the read.
func (r *Reconciler) SiteContent(ctx context.Context) (content.Document, error) {
	doc, err := snapshot.Load(r.paths.Content)
	if err != nil {
		log.Printf("reconcile: content snapshot unreadable, using database: %v", err)
		doc = nil
	}
	if doc == nil {
		doc, err = r.store.GetSiteSettings(ctx)
		if err != nil {
			log.Printf("reconcile: site settings unavailable, serving defaults: %v", err)
			doc = nil
		}
	}

	merged := content.MergeWithDefaults(doc)

	sitemap, err := snapshot.Load(r.paths.Sitemap)
	if err != nil {
		log.Printf("reconcile: sitemap snapshot unreadable, ignoring: %v", err)
	} else if sitemap != nil {
		if nav, ok := sitemap["navigation"]; ok && nav != nil {
			merged = content.Merge(merged, content.Document{"navigation": nav})
		}
	}

	return merged, nil
}

// WriteSiteContent merges the incoming partial document over the current
// effective content and persists the result. The database write must
// succeed; the snapshot write is best-effort.
func (r *Reconciler) WriteSiteContent(ctx context.Context, incoming any) (content.Document, error) {
	current, err := r.SiteContent(ctx)
	if err != nil {
		return nil, err
	}

	merged := content.Merge(current, incoming)

	if err := r.store.UpsertSiteSettings(ctx, merged); err != nil {
		return nil, fmt.Errorf("persist site content: %w", err)
	}
	if err := snapshot.Save(r.paths.Content, merged); err != nil {
		log.Printf("reconcile: content snapshot write failed: %v", err)
	}

	return merged, nil
}

// SMTPSettings returns the stored SMTP settings document, snapshot first.
// A missing document yields an empty map rather than nil, and a database
// outage degrades the same way.
func (r *Reconciler) SMTPSettings(ctx context.Context) (map[string]any, error) {
	doc, err := snapshot.Load(r.paths.SMTP)
	if err != nil {
		log.Printf("reconcile: smtp snapshot unreadable, using database: %v", err)
		doc = nil
	}
	if doc == nil {
		doc, err = r.store.GetSMTPSettings(ctx)
		if err != nil {
			log.Printf("reconcile: smtp settings unavailable, serving empty: %v", err)
			doc = nil
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// WriteSMTPSettings persists the settings document, database first and
// snapshot best-effort.
func (r *Reconciler) WriteSMTPSettings(ctx context.Context, doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	if err := r.store.UpsertSMTPSettings(ctx, doc); err != nil {
		return fmt.Errorf("persist smtp settings: %w", err)
	}
	if err := snapshot.Save(r.paths.SMTP, doc); err != nil {
		log.Printf("reconcile: smtp snapshot write failed: %v", err)
	}
	return nil
}

// Sitemap returns the sitemap snapshot, or an empty document when none
// has been written yet.
func (r *Reconciler) Sitemap() (map[string]any, error) {
	doc, err := snapshot.Load(r.paths.Sitemap)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// WriteSitemap stores the sitemap document. The sitemap lives only in
// its snapshot file; there is no relational row behind it.
func (r *Reconciler) WriteSitemap(doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	return snapshot.Save(r.paths.Sitemap, doc)
}
