package mail

import (
	"context"
	"log"
	"time"

	"mutual-book/internal/domain/funnel"
)

// LogDispatcher writes the message to the log instead of sending it.
// Selected when no SendGrid key is configured, so the funnel works end to
// end in development.
type LogDispatcher struct {
	linkTTL time.Duration
	logger  *log.Logger
}

func NewLogDispatcher(linkTTL time.Duration, logger *log.Logger) *LogDispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogDispatcher{linkTTL: linkTTL, logger: logger}
}

func (d *LogDispatcher) SendProfileLink(_ context.Context, entry funnel.OnboardingEntry, link string) {
	d.logger.Printf(
		"mail (log only) | to=%s subject=%q\n%s",
		entry.Email, subject, buildPlain(entry, link, expiryNote(d.linkTTL)),
	)
}
