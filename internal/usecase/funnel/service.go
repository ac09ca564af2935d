package funnel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/mail"
	"mutual-book/internal/pkg/linktoken"
)

// Service implements the three funnel operations. Each runs strictly
// validate → persist → dispatch: a validation failure short-circuits
// before any side effect, a storage failure aborts before mail, and a
// mail failure never aborts (the dispatcher swallows it).
type Service struct {
	store      funnel.Store
	dispatcher mail.Dispatcher
	tokens     *linktoken.Service
	baseURL    string
	logger     *log.Logger
}

func NewService(store funnel.Store, dispatcher mail.Dispatcher, tokens *linktoken.Service, baseURL string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		tokens:     tokens,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

func (s *Service) SubmitOnboarding(ctx context.Context, in funnel.EntryInput) (funnel.OnboardingEntry, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := funnel.ValidateEntry(in); err != nil {
		return funnel.OnboardingEntry{}, err
	}

	entry, err := s.store.CreateOnboardingEntry(ctx, in)
	if err != nil {
		return funnel.OnboardingEntry{}, fmt.Errorf("create onboarding entry: %w", err)
	}

	s.dispatcher.SendProfileLink(ctx, entry, s.continuationLink(entry))
	return entry, nil
}

func (s *Service) ResendEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := funnel.ValidateEmailRequest(email); err != nil {
		return err
	}

	entry, err := s.store.GetOnboardingEntryByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, funnel.ErrEntryNotFound) {
			return funnel.ErrEntryNotFound
		}
		return fmt.Errorf("lookup onboarding entry: %w", err)
	}

	s.dispatcher.SendProfileLink(ctx, entry, s.continuationLink(entry))
	return nil
}

func (s *Service) CompleteProfile(ctx context.Context, in funnel.ProfileInput) (funnel.Profile, error) {
	if err := funnel.ValidateProfile(in); err != nil {
		return funnel.Profile{}, err
	}

	prof, err := s.store.CreateProfile(ctx, in)
	if err != nil {
		return funnel.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return prof, nil
}

// continuationLink points the email at the follow-up form for this entry.
// The token states the expiry window; nothing downstream enforces it.
func (s *Service) continuationLink(entry funnel.OnboardingEntry) string {
	link := fmt.Sprintf("%s/complete-profile/%d", s.baseURL, entry.ID)

	tok, err := s.tokens.Generate(entry.ID, entry.Email)
	if err != nil {
		s.logger.Printf("link token generation failed, sending bare link | entry_id=%d error=%v", entry.ID, err)
		return link
	}
	return link + "?token=" + tok
}
