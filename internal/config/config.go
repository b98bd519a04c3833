package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	UploadsDir    string
	JSONBodyLimit int64
	DBRetryDelay  time.Duration
	DBMaxRetries  int
	CORSOrigin    string

	// Local snapshot files (the reconciler's override channel)
	SiteContentPath  string
	SMTPSettingsPath string
	SitemapPath      string

	PublicSiteURL string
	AdminPanelURL string

	// Admin credentials. AdminPasswordHash (bcrypt) wins over the plain
	// AdminPassword, which is hashed at startup for dev setups.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AccessTTL         time.Duration

	// Optional backends
	RedisURL       string
	MeiliURL       string
	MeiliMasterKey string
}

func Load() Config {
	return Config{
		Addr:          ":" + getenv("PORT", "3001"),
		DatabaseURL:   databaseURL(),
		UploadsDir:    getenv("UPLOADS_DIR", "./uploads"),
		JSONBodyLimit: int64(getenvInt("JSON_BODY_LIMIT", 10<<20)),
		DBRetryDelay:  time.Duration(getenvInt("DB_RETRY_DELAY_MS", 2000)) * time.Millisecond,
		DBMaxRetries:  getenvInt("DB_MAX_RETRIES", 0),
		CORSOrigin:    getenv("CORS_ORIGIN", "*"),

		SiteContentPath:  getenv("CURRENT_SITE_CONTENT_PATH", "./data/current-site-content.json"),
		SMTPSettingsPath: getenv("CURRENT_SMTP_SETTINGS_PATH", "./data/current-smtp-settings.json"),
		SitemapPath:      getenv("CURRENT_SITEMAP_PATH", "./data/current-sitemap.json"),

		PublicSiteURL: getenv("PUBLIC_SITE_URL", getenv("SITE_URL", "https://azfin.az")),
		AdminPanelURL: getenv("ADMIN_PANEL_URL", ""),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getenv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
		AccessTTL:         time.Duration(getenvInt("ACCESS_TTL_SECONDS", 86400)) * time.Second,

		RedisURL:       getenv("REDIS_URL", ""),
		MeiliURL:       getenv("MEILI_URL", ""),
		MeiliMasterKey: getenv("MEILI_MASTER_KEY", ""),
	}
}

// PublicSiteHost extracts the host from the configured public site URL for
// the link resolver's trusted-host set.
func (c Config) PublicSiteHost() string {
	parsed, err := url.Parse(c.PublicSiteURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// databaseURL prefers DATABASE_URL and otherwise composes one from the
// discrete DB_* options.
func databaseURL() string {
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		return raw
	}
	host := getenv("DB_HOST", "localhost")
	user := getenv("DB_USER", "azfin")
	password := getenv("DB_PASSWORD", "azfin")
	name := getenv("DB_NAME", "azfin")
	return fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable",
		url.QueryEscape(user), url.QueryEscape(password), host, name)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
