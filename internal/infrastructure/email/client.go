// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/ComboLab/combolab-go/internal/infrastructure/email/templates"
	"github.com/ComboLab/combolab-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendWelcomeEmail(toEmail, username string) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	siteURL   string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "https://combolab.app"
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
		siteURL:   siteURL,
	}, nil
}

// SendWelcomeEmail composes and sends the account welcome email.
func (c *ResendClient) SendWelcomeEmail(toEmail, username string) error {
	content := templates.GetWelcomeEmailContent(templates.WelcomeEmailProps{
		Username: username,
		SiteURL:  c.siteURL,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "Your ComboLab account is ready",
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: "Welcome to ComboLab",
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send welcome email via Resend: %w", err)
	}

	return nil
}
