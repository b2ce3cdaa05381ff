package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"strings"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names
const (
	KycSubmitted = "kyc_submitted"
	KycDecision  = "kyc_decision"
)

// EmailData defines the fields the KYC notification templates use.
type EmailData struct {
	Name    string `json:"Name"`
	Email   string `json:"Email"`
	AppName string `json:"AppName"`

	// Review fields
	Status      string `json:"Status"`
	SubmittedAt string `json:"SubmittedAt"`
	ReviewedAt  string `json:"ReviewedAt"`
}

// ToMap converts EmailData to a map[string]any for EmailJob.Data
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

var funcMap = htmpl.FuncMap{
	"now":   func() time.Time { return time.Now().UTC() },
	"upper": strings.ToUpper,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Subject returns the subject line for a template/data pair.
func Subject(name string, data map[string]any) string {
	switch name {
	case KycSubmitted:
		return "We received your identity documents"
	case KycDecision:
		switch fmt.Sprintf("%v", data["Status"]) {
		case "verified":
			return "Your identity has been verified"
		case "rejected":
			return "Your identity verification was rejected"
		default:
			return "Your identity verification status changed"
		}
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	t, err := htmpl.New(name + ".tmpl").Funcs(funcMap).ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
