// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"log"
)

type WelcomeEmailProps struct {
	Username string
	SiteURL  string
}

var welcomeTemplate = template.Must(template.New("emailWelcome").Parse(`
    <h1 style="font-family: Helvetica, sans-serif; font-size: 22px; margin: 0 0 16px;">Welcome to ComboLab, {{.Username}}!</h1>
    <p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0 0 16px;">Your account is ready. Browse game rosters, study combo notation, and share your own routes with the community.</p>
    <p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0 0 16px;"><a href="{{.SiteURL}}" target="_blank" style="color: #0867ec; font-weight: bold;">Start exploring</a></p>`))

// GetWelcomeEmailContent renders the welcome email body.
func GetWelcomeEmailContent(props WelcomeEmailProps) string {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: failed to render welcome email: %v", err)
		return ""
	}
	return buf.String()
}
