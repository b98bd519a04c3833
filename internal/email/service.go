// Package email sends form-submission notifications via SMTP using the
// settings stored by the admin panel.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aliyabuz25/AzfinContainer/internal/content"
)

// Settings is the admin-managed SMTP configuration. Values arrive from
// loosely typed JSON so callers should run them through NormalizeSettings
// before use.
type Settings struct {
	Enabled       bool   `json:"enabled"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	Secure        bool   `json:"secure"`
	User          string `json:"user"`
	Pass          string `json:"pass"`
	From          string `json:"from"`
	To            string `json:"to"`
	CC            string `json:"cc"`
	BCC           string `json:"bcc"`
	SubjectPrefix string `json:"subjectPrefix"`
}

const (
	defaultPort          = 587
	defaultSubjectPrefix = "AZFIN"
)

// NormalizeSettings coerces a raw settings document into a Settings value,
// tolerating string booleans, string ports and missing keys.
func NormalizeSettings(raw map[string]any) Settings {
	s := Settings{
		Enabled:       content.NormalizeBool(raw["enabled"], false),
		Host:          content.NormalizeString(raw["host"]),
		Port:          content.NormalizePort(raw["port"], defaultPort),
		Secure:        content.NormalizeBool(raw["secure"], false),
		User:          content.NormalizeString(raw["user"]),
		Pass:          content.NormalizeString(raw["pass"]),
		From:          content.NormalizeString(raw["from"]),
		To:            content.NormalizeString(raw["to"]),
		CC:            content.NormalizeString(raw["cc"]),
		BCC:           content.NormalizeString(raw["bcc"]),
		SubjectPrefix: content.NormalizeStringOr(raw["subjectPrefix"], defaultSubjectPrefix),
	}
	if s.From == "" {
		s.From = s.User
	}
	return s
}

// Document returns the JSON shape persisted for the admin panel.
func (s Settings) Document() map[string]any {
	return map[string]any{
		"enabled":       s.Enabled,
		"host":          s.Host,
		"port":          s.Port,
		"secure":        s.Secure,
		"user":          s.User,
		"pass":          s.Pass,
		"from":          s.From,
		"to":            s.To,
		"cc":            s.CC,
		"bcc":           s.BCC,
		"subjectPrefix": s.SubjectPrefix,
	}
}

// Configured reports whether the settings are complete enough to attempt
// a delivery.
func (s Settings) Configured() bool {
	return s.Enabled && s.Host != "" && s.Port > 0 && s.To != ""
}

// SendFunc performs the actual SMTP delivery. Swappable in tests.
type SendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type Service struct {
	send SendFunc
}

func NewService() *Service {
	return &Service{send: smtp.SendMail}
}

// NewServiceWithSender builds a Service with a custom transport, used by
// tests to capture the outgoing message.
func NewServiceWithSender(send SendFunc) *Service {
	return &Service{send: send}
}

// Submission is the notification payload rendered into the message body.
type Submission struct {
	ID        int64
	Type      string
	FormData  map[string]any
	CreatedAt time.Time
}

// SendSubmissionNotification renders and delivers the notification for a
// stored form submission. Returns a short delivery note on success.
func (svc *Service) SendSubmissionNotification(settings Settings, sub Submission) (string, error) {
	if !settings.Configured() {
		return "", fmt.Errorf("smtp not configured")
	}

	html, err := renderSubmission(sub)
	if err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}

	subject := fmt.Sprintf("[%s] Yeni müraciət: %s", settings.SubjectPrefix, submissionTitle(sub.Type))
	recipients := splitAddresses(settings.To)
	recipients = append(recipients, splitAddresses(settings.CC)...)
	recipients = append(recipients, splitAddresses(settings.BCC)...)
	if len(recipients) == 0 {
		return "", fmt.Errorf("no recipients configured")
	}

	from := settings.From
	if from == "" {
		from = settings.User
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", settings.To)
	if settings.CC != "" {
		fmt.Fprintf(&msg, "Cc: %s\r\n", settings.CC)
	}
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "%s\r\n", html)

	var auth smtp.Auth
	if settings.User != "" {
		auth = smtp.PlainAuth("", settings.User, settings.Pass, settings.Host)
	}
	addr := settings.Host + ":" + strconv.Itoa(settings.Port)
	if err := svc.send(addr, auth, from, recipients, msg.Bytes()); err != nil {
		return "", fmt.Errorf("send notification: %w", err)
	}
	return fmt.Sprintf("delivered to %d recipient(s) via %s", len(recipients), addr), nil
}

func splitAddresses(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func submissionTitle(submissionType string) string {
	switch submissionType {
	case "audit":
		return "Audit sifarişi"
	case "training":
		return "Təlimə qeydiyyat"
	case "contact":
		return "Əlaqə formu"
	default:
		return submissionType
	}
}

type submissionView struct {
	Title     string
	ID        int64
	CreatedAt string
	Fields    []fieldView
}

type fieldView struct {
	Label string
	Value string
}

func renderSubmission(sub Submission) (string, error) {
	view := submissionView{
		Title:     submissionTitle(sub.Type),
		ID:        sub.ID,
		CreatedAt: sub.CreatedAt.Format("02.01.2006 15:04"),
	}

	keys := make([]string, 0, len(sub.FormData))
	for key := range sub.FormData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		view.Fields = append(view.Fields, fieldView{
			Label: key,
			Value: fmt.Sprintf("%v", sub.FormData[key]),
		})
	}

	var buf bytes.Buffer
	if err := submissionTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var submissionTemplate = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #b8860b; padding-bottom: 10px; margin-bottom: 20px; }
        table { border-collapse: collapse; width: 100%; }
        td { padding: 8px 12px; border-bottom: 1px solid #eee; vertical-align: top; }
        td.label { font-weight: 600; width: 35%; color: #555; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Title}}</h1>
    </div>

    <p>Müraciət №{{.ID}} · {{.CreatedAt}}</p>

    <table>
        {{range .Fields}}
        <tr>
            <td class="label">{{.Label}}</td>
            <td>{{.Value}}</td>
        </tr>
        {{end}}
    </table>

    <div class="footer">
        <p>Bu bildiriş sayt idarəetmə paneli tərəfindən avtomatik göndərilib.</p>
    </div>
</body>
</html>`))
