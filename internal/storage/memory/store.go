package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mutual-book/internal/domain/funnel"
)

// Store is the transient funnel.Store: everything lives in process memory
// and is lost on restart. Constructed per instance so tests stay isolated.
type Store struct {
	mu sync.Mutex

	entries     map[int]funnel.OnboardingEntry
	profiles    map[int]funnel.Profile
	nextEntryID int
	nextProfID  int

	now func() time.Time
}

func New() *Store {
	return &Store{
		entries:     map[int]funnel.OnboardingEntry{},
		profiles:    map[int]funnel.Profile{},
		nextEntryID: 1,
		nextProfID:  1,
		now:         time.Now,
	}
}

func (s *Store) CreateOnboardingEntry(_ context.Context, in funnel.EntryInput) (funnel.OnboardingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := funnel.OnboardingEntry{
		ID:          s.nextEntryID,
		UserType:    in.UserType,
		Communities: append([]string(nil), in.Communities...),
		SocialMedia: in.SocialMedia,
		Email:       in.Email,
		CreatedAt:   s.now().UTC(),
	}
	s.nextEntryID++
	s.entries[entry.ID] = entry
	return entry, nil
}

func (s *Store) GetOnboardingEntryByEmail(_ context.Context, email string) (funnel.OnboardingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids are assigned in insertion order, so the lowest matching id is
	// the first-submitted entry for the address.
	ids := make([]int, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if s.entries[id].Email == email {
			return s.entries[id], nil
		}
	}
	return funnel.OnboardingEntry{}, funnel.ErrEntryNotFound
}

func (s *Store) CreateProfile(_ context.Context, in funnel.ProfileInput) (funnel.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prof := funnel.Profile{
		ID:                s.nextProfID,
		OnboardingID:      in.OnboardingID,
		FullName:          in.FullName,
		Bio:               in.Bio,
		PersonalityTraits: append([]string(nil), in.PersonalityTraits...),
		Goals:             in.Goals,
		CreatedAt:         s.now().UTC(),
	}
	s.nextProfID++
	s.profiles[prof.ID] = prof
	return prof, nil
}
