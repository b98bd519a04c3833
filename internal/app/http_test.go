package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) (*httptest.Server, *Service) {
	t.Helper()
	svc, _, _ := newTestService(t, adminConfig(t))
	httpServer := NewHTTPServer(svc, "*", 1<<20, t.TempDir())
	ts := httptest.NewServer(httpServer.Handler())
	t.Cleanup(ts.Close)
	return ts, svc
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		payload = bytes.NewBuffer(encoded)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func loginToken(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/login", "", map[string]any{
		"username": "admin",
		"password": "parol123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d body = %v", resp.StatusCode, body)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("no access_token in %v", body)
	}
	return token
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestLoginEndpointRejectsBadPassword(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/login", "", map[string]any{
		"username": "admin",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["code"] != "INVALID_CREDENTIALS" {
		t.Fatalf("body = %v", body)
	}
}

func TestSettingsReadIsPublicWriteIsGuarded(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/settings", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public read status = %d", resp.StatusCode)
	}
	if body["home"] == nil {
		t.Fatal("default content should include the home section")
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/settings", "", map[string]any{
		"home": map[string]any{"heroTitlePrefix": "Hacked"},
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated write status = %d", resp.StatusCode)
	}

	token := loginToken(t, ts)
	resp, merged := doJSON(t, http.MethodPost, ts.URL+"/api/settings", token, map[string]any{
		"home": map[string]any{"heroTitlePrefix": "Yenilənmiş"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("authenticated write status = %d body = %v", resp.StatusCode, merged)
	}

	_, readBack := doJSON(t, http.MethodGet, ts.URL+"/api/settings", "", nil)
	home := readBack["home"].(map[string]any)
	if home["heroTitlePrefix"] != "Yenilənmiş" {
		t.Fatalf("heroTitlePrefix = %v", home["heroTitlePrefix"])
	}
	if home["heroTitleHighlight"] == nil {
		t.Error("defaults must survive a partial write")
	}
}

func TestBlogLifecycleOverHTTP(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/blog", "", map[string]any{"title": "x"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create status = %d", resp.StatusCode)
	}

	resp, created := doJSON(t, http.MethodPost, ts.URL+"/api/blog", token, map[string]any{
		"title":  "Dərc olunmuş yazı",
		"body":   "Mətn",
		"status": "published",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d body = %v", resp.StatusCode, created)
	}
	postID, _ := created["id"].(string)
	if postID == "" {
		t.Fatalf("no id in %v", created)
	}

	resp, draft := doJSON(t, http.MethodPost, ts.URL+"/api/blog", token, map[string]any{
		"title":  "Qaralama",
		"status": "draft",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("draft create status = %d body = %v", resp.StatusCode, draft)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/blog", nil)
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var publicList []map[string]any
	_ = json.NewDecoder(listResp.Body).Decode(&publicList)
	listResp.Body.Close()
	if len(publicList) != 1 {
		t.Fatalf("public list should hide drafts, got %d items", len(publicList))
	}

	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/api/blog?all=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	allResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	var adminList []map[string]any
	_ = json.NewDecoder(allResp.Body).Decode(&adminList)
	allResp.Body.Close()
	if len(adminList) != 2 {
		t.Fatalf("admin list should include drafts, got %d items", len(adminList))
	}

	resp, got := doJSON(t, http.MethodGet, ts.URL+"/api/blog/"+postID, "", nil)
	if resp.StatusCode != http.StatusOK || got["title"] != "Dərc olunmuş yazı" {
		t.Fatalf("get status = %d body = %v", resp.StatusCode, got)
	}

	resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/blog/"+postID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/blog/"+postID, "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", resp.StatusCode)
	}
}

func TestBlogSearchFallsBackToDatabase(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	doJSON(t, http.MethodPost, ts.URL+"/api/blog", token, map[string]any{
		"title": "Vergi islahatları", "status": "published",
	})

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/blog?q=Vergi", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
	results, _ := body["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("results = %v", body)
	}
}

func TestSubmissionEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	resp, created := doJSON(t, http.MethodPost, ts.URL+"/api/submissions", "", map[string]any{
		"type":      "contact",
		"form_data": map[string]any{"name": "Aysel", "email": "aysel@example.com"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d body = %v", resp.StatusCode, created)
	}
	if created["success"] != true {
		t.Fatalf("success = %v", created["success"])
	}
	if _, ok := created["id"].(float64); !ok {
		t.Fatalf("id missing from create response: %v", created)
	}
	if _, ok := created["mailSent"].(bool); !ok {
		t.Fatalf("mailSent missing from create response: %v", created)
	}
	id := int64(created["id"].(float64))

	// Older clients send the camelCase key; it still works.
	resp, aliased := doJSON(t, http.MethodPost, ts.URL+"/api/submissions", "", map[string]any{
		"type":     "contact",
		"formData": map[string]any{"name": "Tural"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("alias create status = %d body = %v", resp.StatusCode, aliased)
	}

	resp, _ = doJSON(t, http.MethodGet, ts.URL+"/api/submissions", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list status = %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/submissions?type=contact", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	listResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var items []map[string]any
	_ = json.NewDecoder(listResp.Body).Decode(&items)
	listResp.Body.Close()
	if len(items) != 2 {
		t.Fatalf("list = %v", items)
	}

	resp, patched := doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/submissions/%d", ts.URL, id), token, map[string]any{"status": "read"})
	if resp.StatusCode != http.StatusOK || patched["status"] != "read" {
		t.Fatalf("patch status = %d body = %v", resp.StatusCode, patched)
	}

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/submissions/%d", ts.URL, id), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/submissions/%d", ts.URL, id), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", resp.StatusCode)
	}
}

func TestSitemapEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	resp, empty := doJSON(t, http.MethodGet, ts.URL+"/api/sitemap", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty sitemap, got %v", empty)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sitemap", "", map[string]any{"pages": []string{"/"}})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated write status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/sitemap", token, map[string]any{
		"navigation": map[string]any{"items": []any{map[string]any{"label": "Ana", "path": "/"}}},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("write status = %d", resp.StatusCode)
	}

	// Sitemap navigation overrides content navigation on settings reads.
	_, settings := doJSON(t, http.MethodGet, ts.URL+"/api/settings", "", nil)
	nav := settings["navigation"].(map[string]any)
	items, ok := nav["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("navigation items = %#v", nav["items"])
	}
}

func TestUploadEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "Hero Banner.PNG")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	part.Write([]byte("fake image bytes"))
	form.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	filename, _ := body["filename"].(string)
	if !regexp.MustCompile(`^\d+-[0-9a-f]{8}\.png$`).MatchString(filename) {
		t.Fatalf("filename = %q, want timestamp-random with lowercased extension", filename)
	}
	if body["url"] != "/uploads/"+filename {
		t.Fatalf("url = %v", body["url"])
	}

	served, err := http.Get(ts.URL + "/uploads/" + filename)
	if err != nil {
		t.Fatalf("fetch upload: %v", err)
	}
	defer served.Body.Close()
	content, _ := io.ReadAll(served.Body)
	if served.StatusCode != http.StatusOK || string(content) != "fake image bytes" {
		t.Fatalf("served status %d body %q", served.StatusCode, content)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/upload", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, body %v", resp.StatusCode, body)
	}
}

func TestUploadsStaticRejectsTraversal(t *testing.T) {
	ts, _ := newTestServer(t)
	for _, path := range []string{"/uploads/..%2Fsecret", "/uploads/"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestSitemapXMLEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/sitemap.xml")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), "<urlset") || !strings.Contains(string(body), "/about</loc>") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestSitemapXMLStoreFailureReturnsJSONError(t *testing.T) {
	svc, fs, _ := newTestService(t, adminConfig(t))
	fs.listErr = errors.New("connection refused")
	httpServer := NewHTTPServer(svc, "*", 1<<20, t.TempDir())
	ts := httptest.NewServer(httpServer.Handler())
	t.Cleanup(ts.Close)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/sitemap.xml", "", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["code"] != "SERVER_ERROR" {
		t.Fatalf("body = %v", body)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["code"] != "NOT_FOUND" {
		t.Fatalf("body = %v", body)
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	ts, _ := newTestServer(t)
	token := loginToken(t, ts)

	big := bytes.Repeat([]byte("a"), 2<<20)
	payload := map[string]any{"title": string(big)}
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/blog", token, payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, oversized body must be refused", resp.StatusCode)
	}
}
