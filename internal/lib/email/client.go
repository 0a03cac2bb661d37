// Package email renders the embedded HTML templates and sends them through
// Resend.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templates embed.FS

// Template names an embedded template file without its extension.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

// DefaultFrom is used when no sender address is configured.
const DefaultFrom = "onboarding@resend.dev"

// Sender is the part of the Resend API the client needs.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	sender Sender
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return NewClientWithSender(resend.NewClient(cfg.Integration.ResendAPIKey).Emails, cfg.Integration.EmailFrom, logger)
}

// NewClientWithSender builds a client over an arbitrary sender.
func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	if from == "" {
		from = DefaultFrom
	}
	return &Client{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templates, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

func (c *Client) SendEmail(to, subject string, name Template, data map[string]string) error {
	html, err := Render(name, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", config.ServiceName, c.from),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.sender.Send(params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("template", string(name)).
		Str("email_id", sent.Id).
		Msg("email accepted by provider")

	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(to, firstName, username string) error {
	return c.SendEmail(to, "Welcome to your new bank profile", TemplateWelcome, map[string]string{
		"UserFirstName": firstName,
		"Username":      username,
		"BankName":      config.ServiceName,
	})
}

// PreviewData holds sample data for every template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "Alice",
		"Username":      "aanderson",
		"BankName":      config.ServiceName,
	},
}
