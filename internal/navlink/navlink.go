// Package navlink classifies raw path/URL strings from content documents
// into renderable navigation links. Classification is deterministic and
// side-effect free so the same logic can run for sitemap generation on the
// server and for rendering on the client.
package navlink

import (
	"net/url"
	"regexp"
	"strings"
)

// Link is a resolved navigation target.
type Link struct {
	IsExternal bool   `json:"isExternal"`
	Path       string `json:"path"`
	Href       string `json:"href"`
}

var (
	absoluteHTTPRe     = regexp.MustCompile(`(?i)^https?://`)
	externalProtocolRe = regexp.MustCompile(`(?i)^(https?://|mailto:|tel:)`)
	domainLikeRe       = regexp.MustCompile(`(?i)^[a-z0-9.-]+\.[a-z]{2,}([/:?#].*)?$`)
	hashRouteRe        = regexp.MustCompile(`^#/`)
)

// defaultTrustedHosts are hosts whose absolute URLs are rewritten to
// internal path form.
var defaultTrustedHosts = []string{"azfin.az", "www.azfin.az", "azfin.octotech.az"}

// Resolver classifies links against a trusted-host set.
type Resolver struct {
	trusted map[string]bool
}

// NewResolver builds a resolver trusting the default host set plus any
// extra hosts (typically the deployment's own public host).
func NewResolver(extraHosts ...string) *Resolver {
	trusted := make(map[string]bool, len(defaultTrustedHosts)+len(extraHosts))
	for _, host := range defaultTrustedHosts {
		trusted[host] = true
	}
	for _, host := range extraHosts {
		host = strings.TrimSpace(host)
		if host != "" {
			trusted[host] = true
		}
	}
	return &Resolver{trusted: trusted}
}

// Resolve classifies a raw string. Empty input yields nil. forceExternal
// short-circuits classification and returns the trimmed value as-is.
func (r *Resolver) Resolve(raw string, forceExternal bool) *Link {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if forceExternal {
		return &Link{IsExternal: true, Path: value, Href: value}
	}

	if strings.HasPrefix(value, "#/") || strings.HasPrefix(value, "/") {
		path := normalizeInternalPath(value)
		return &Link{IsExternal: false, Path: path, Href: path}
	}

	if path, ok := r.internalFromAbsolute(value); ok {
		return &Link{IsExternal: false, Path: path, Href: path}
	}

	if externalProtocolRe.MatchString(value) {
		return &Link{IsExternal: true, Path: value, Href: value}
	}

	if domainLikeRe.MatchString(value) {
		href := "https://" + value
		return &Link{IsExternal: true, Path: href, Href: href}
	}

	path := normalizeInternalPath(value)
	return &Link{IsExternal: false, Path: path, Href: path}
}

// internalFromAbsolute rewrites an absolute URL on a trusted host into
// path form, preferring an internal-looking hash route over the pathname.
func (r *Resolver) internalFromAbsolute(raw string) (string, bool) {
	if !absoluteHTTPRe.MatchString(raw) {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if !r.trusted[parsed.Host] {
		return "", false
	}
	if parsed.Fragment != "" && hashRouteRe.MatchString("#"+parsed.Fragment) {
		return normalizeInternalPath("#" + parsed.Fragment), true
	}
	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return normalizeInternalPath(path), true
}

func normalizeInternalPath(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#/") {
		return trimmed[1:]
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + strings.TrimLeft(trimmed, "/")
}

var defaultResolver = NewResolver()

// Resolve classifies a raw link against the default trusted-host set.
func Resolve(raw string, forceExternal bool) *Link {
	return defaultResolver.Resolve(raw, forceExternal)
}
