// Package mail sends the transactional welcome email. Delivery is
// best-effort: the dispatcher logs failures and returns nothing, so the
// endpoints acknowledge success once the entry is persisted regardless of
// whether the email actually left the system.
package mail

import (
	"context"
	"fmt"
	"strings"

	"mutual-book/internal/domain/funnel"
)

// Dispatcher sends the profile-completion email for an entry. Call sites
// never learn about delivery failures.
type Dispatcher interface {
	SendProfileLink(ctx context.Context, entry funnel.OnboardingEntry, link string)
}

const subject = "Welcome to MutualBook - Complete Your Profile"

func buildHTML(entry funnel.OnboardingEntry, link string, expiryNote string) string {
	var b strings.Builder

	b.WriteString("<h2>Welcome to MutualBook!</h2>")
	b.WriteString("<p>Where students and professionals connect and grow together.</p>")

	b.WriteString("<h3>Your initial details</h3><ul>")
	fmt.Fprintf(&b, "<li>Type: %s</li>", entry.UserType)
	fmt.Fprintf(&b, "<li>Communities: %s</li>", strings.Join(entry.Communities, ", "))
	if socials := socialSummary(entry.SocialMedia); socials != "" {
		fmt.Fprintf(&b, "<li>Social media: %s</li>", socials)
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, `<p><a href="%s">Complete your profile setup</a></p>`, link)
	fmt.Fprintf(
		&b,
		"<p>This personalized link takes you to a short form where you can finish setting up your profile and start connecting with other %ss in your selected communities. %s</p>",
		entry.UserType, expiryNote,
	)
	b.WriteString("<p>Best regards,<br>The MutualBook Team</p>")

	return b.String()
}

func buildPlain(entry funnel.OnboardingEntry, link string, expiryNote string) string {
	var b strings.Builder

	b.WriteString("Welcome to MutualBook - where students and professionals connect and grow together!\n\n")
	b.WriteString("Your initial details:\n")
	fmt.Fprintf(&b, "- Type: %s\n", entry.UserType)
	fmt.Fprintf(&b, "- Communities: %s\n", strings.Join(entry.Communities, ", "))
	if socials := socialSummary(entry.SocialMedia); socials != "" {
		fmt.Fprintf(&b, "- Social media: %s\n", socials)
	}
	fmt.Fprintf(&b, "\nComplete your profile setup: %s\n%s\n\nBest regards,\nThe MutualBook Team\n", link, expiryNote)

	return b.String()
}

func socialSummary(s funnel.SocialLinks) string {
	var parts []string
	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("WhatsApp", s.WhatsApp)
	add("Instagram", s.Instagram)
	add("Snapchat", s.Snapchat)
	add("LinkedIn", s.LinkedIn)
	return strings.Join(parts, ", ")
}
