package notify

import (
	"context"
	"log/slog"
	"strings"

	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
)

var ErrMailRejected = errs.New("mail api rejected message")

type Mailer interface {
	Send(ctx context.Context, m shared.Mail) error
}

// NewMailer falls back to logging messages when no mail API is configured.
func NewMailer(cfg config.MailConfig) Mailer {
	if strings.TrimSpace(cfg.APIURL) == "" {
		slog.Warn("MAIL_API_URL not set, mail is written to the log")
		return NewConsoleMailer(slog.Default())
	}
	return NewHTTPMailer(cfg)
}

type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

type mailErrorResponse struct {
	Message string `json:"message"`
}

// HTTPMailer posts messages to a transactional mail API.
type HTTPMailer struct {
	client *resty.Client
	from   string
}

func NewHTTPMailer(cfg config.MailConfig) *HTTPMailer {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &HTTPMailer{client: client, from: cfg.From}
}

func (m *HTTPMailer) Send(ctx context.Context, mail shared.Mail) error {
	var apiErr mailErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(mailRequest{
			From:    m.from,
			To:      mail.To,
			Subject: mail.Subject,
			Text:    mail.Text,
			HTML:    mail.HTML,
		}).
		SetError(&apiErr).
		Post("/send")
	if err != nil {
		return errs.Wrap(err, "failed to call mail api")
	}
	if resp.IsError() {
		return errs.Wrap(ErrMailRejected, resp.Status()+" "+apiErr.Message)
	}
	return nil
}

type ConsoleMailer struct {
	logger *slog.Logger
}

func NewConsoleMailer(logger *slog.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

func (m *ConsoleMailer) Send(_ context.Context, mail shared.Mail) error {
	m.logger.Info("[MAIL:FALLBACK]",
		"to", mail.To,
		"subject", mail.Subject,
		"text", mail.Text,
	)
	return nil
}
