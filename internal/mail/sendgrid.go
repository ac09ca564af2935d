package mail

import (
	"context"
	"fmt"
	"log"
	"time"

	"mutual-book/internal/domain/funnel"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridDispatcher delivers through the SendGrid v3 API. One attempt,
// no retry; a failure is logged with full detail and swallowed.
type SendGridDispatcher struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	linkTTL   time.Duration
	logger    *log.Logger
}

func NewSendGridDispatcher(apiKey, fromEmail, fromName string, linkTTL time.Duration, logger *log.Logger) *SendGridDispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &SendGridDispatcher{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		linkTTL:   linkTTL,
		logger:    logger,
	}
}

func (d *SendGridDispatcher) SendProfileLink(ctx context.Context, entry funnel.OnboardingEntry, link string) {
	note := expiryNote(d.linkTTL)
	from := sgmail.NewEmail(d.fromName, d.fromEmail)
	to := sgmail.NewEmail("", entry.Email)
	msg := sgmail.NewSingleEmail(from, subject, to, buildPlain(entry, link, note), buildHTML(entry, link, note))

	resp, err := d.client.SendWithContext(ctx, msg)
	if err != nil {
		d.logger.Printf("mail: send failed | entry_id=%d email=%s error=%v", entry.ID, entry.Email, err)
		return
	}
	if resp.StatusCode >= 400 {
		d.logger.Printf("mail: send rejected | entry_id=%d email=%s status=%d body=%q", entry.ID, entry.Email, resp.StatusCode, resp.Body)
		return
	}
	d.logger.Printf("mail: sent | entry_id=%d email=%s status=%d", entry.ID, entry.Email, resp.StatusCode)
}

func expiryNote(ttl time.Duration) string {
	days := int(ttl.Hours() / 24)
	if days <= 0 {
		return ""
	}
	return fmt.Sprintf("The link expires in %d days.", days)
}
