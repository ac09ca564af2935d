package funnel

import "time"

// SocialLinks holds the optional handles collected on the third wizard
// step. Every field may be empty.
type SocialLinks struct {
	WhatsApp  string `json:"whatsapp,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Snapchat  string `json:"snapchat,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// OnboardingEntry is the lightweight signup record created by the wizard.
// Entries are immutable once stored.
type OnboardingEntry struct {
	ID          int         `json:"id"`
	UserType    string      `json:"userType"`
	Communities []string    `json:"communities"`
	SocialMedia SocialLinks `json:"socialMedia"`
	Email       string      `json:"email"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Profile is the richer follow-up record reached through the emailed
// continuation link. OnboardingID is taken as given: the product does not
// verify it refers to a stored entry.
type Profile struct {
	ID                int       `json:"id"`
	OnboardingID      int       `json:"onboardingId"`
	FullName          string    `json:"fullName"`
	Bio               string    `json:"bio"`
	PersonalityTraits []string  `json:"personalityTraits"`
	Goals             string    `json:"goals"`
	CreatedAt         time.Time `json:"createdAt"`
}

// EntryInput is a validated-at-the-edge candidate for an OnboardingEntry.
type EntryInput struct {
	UserType    string
	Communities []string
	SocialMedia SocialLinks
	Email       string
}

// ProfileInput is the candidate for a Profile.
type ProfileInput struct {
	OnboardingID      int
	FullName          string
	Bio               string
	PersonalityTraits []string
	Goals             string
}
