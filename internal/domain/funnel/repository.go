package funnel

import (
	"context"
	"errors"
)

var ErrEntryNotFound = errors.New("onboarding entry not found")

// Store is the persistence contract shared by the transient and durable
// implementations. There are no update or delete operations: both
// entities are write-once.
type Store interface {
	// CreateOnboardingEntry assigns a fresh id, stamps the creation time
	// and returns the stored row.
	CreateOnboardingEntry(ctx context.Context, in EntryInput) (OnboardingEntry, error)

	// GetOnboardingEntryByEmail returns the first entry for the address in
	// insertion order (emails are not unique), or ErrEntryNotFound.
	GetOnboardingEntryByEmail(ctx context.Context, email string) (OnboardingEntry, error)

	CreateProfile(ctx context.Context, in ProfileInput) (Profile, error)
}
