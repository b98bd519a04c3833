package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aliyabuz25/AzfinContainer/internal/app"
	"github.com/aliyabuz25/AzfinContainer/internal/config"
	"github.com/aliyabuz25/AzfinContainer/internal/email"
	"github.com/aliyabuz25/AzfinContainer/internal/reconcile"
	"github.com/aliyabuz25/AzfinContainer/internal/search"
	"github.com/aliyabuz25/AzfinContainer/internal/session"
	"github.com/aliyabuz25/AzfinContainer/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.OpenWithRetry(ctx, cfg.DatabaseURL, cfg.DBRetryDelay, cfg.DBMaxRetries)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := store.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("failed to create uploads dir: %v", err)
	}

	dataStore := store.NewPostgresStore(db)
	reconciler := reconcile.New(dataStore, reconcile.Paths{
		Content: cfg.SiteContentPath,
		SMTP:    cfg.SMTPSettingsPath,
		Sitemap: cfg.SitemapPath,
	})

	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
		defer meiliClient.Close()
	}
	searchService := search.NewService(meiliClient, dataStore)
	searchService.Reindex(ctx)

	var sessionStore session.Store
	if strings.TrimSpace(cfg.RedisURL) != "" {
		log.Printf("Using Redis for access token storage")
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer redisStore.Close()
		sessionStore = redisStore
	} else {
		log.Printf("Using in-memory access token storage")
		sessionStore = session.NewMemoryStore()
	}

	service := app.New(cfg, dataStore, reconciler, sessionStore, email.NewService(), searchService)

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin, cfg.JSONBodyLimit, cfg.UploadsDir)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Azfin API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
