package funnel

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/pkg/linktoken"
	"mutual-book/internal/storage/memory"
)

type sentMail struct {
	entry funnel.OnboardingEntry
	link  string
}

type captureDispatcher struct {
	sent []sentMail
}

func (d *captureDispatcher) SendProfileLink(_ context.Context, entry funnel.OnboardingEntry, link string) {
	d.sent = append(d.sent, sentMail{entry: entry, link: link})
}

type failingStore struct {
	funnel.Store
}

func (failingStore) CreateOnboardingEntry(context.Context, funnel.EntryInput) (funnel.OnboardingEntry, error) {
	return funnel.OnboardingEntry{}, errors.New("storage down")
}

func newTestService(dispatcher *captureDispatcher) (*Service, *memory.Store) {
	store := memory.New()
	tokens := linktoken.NewService("test-secret", 7*24*time.Hour)
	return NewService(store, dispatcher, tokens, "https://mutualbook.app/", nil), store
}

func validInput() funnel.EntryInput {
	return funnel.EntryInput{
		UserType:    "student",
		Communities: []string{"Technology", "Design", "Business"},
		Email:       "a@b.com",
	}
}

func TestSubmitOnboarding_PersistsAndDispatches(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc, _ := newTestService(dispatcher)

	entry, err := svc.SubmitOnboarding(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if entry.ID != 1 {
		t.Fatalf("expected id 1, got %d", entry.ID)
	}
	if len(dispatcher.sent) != 1 {
		t.Fatalf("expected 1 dispatched mail, got %d", len(dispatcher.sent))
	}
	link := dispatcher.sent[0].link
	if !strings.HasPrefix(link, "https://mutualbook.app/complete-profile/1?token=") {
		t.Fatalf("unexpected continuation link: %s", link)
	}
}

func TestSubmitOnboarding_ValidationShortCircuitsSideEffects(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc, store := newTestService(dispatcher)

	in := validInput()
	in.Communities = nil

	_, err := svc.SubmitOnboarding(context.Background(), in)
	var vErr *funnel.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(dispatcher.sent) != 0 {
		t.Fatalf("validation failure must not dispatch mail")
	}
	if _, err := store.GetOnboardingEntryByEmail(context.Background(), in.Email); !errors.Is(err, funnel.ErrEntryNotFound) {
		t.Fatalf("validation failure must not persist, got %v", err)
	}
}

func TestSubmitOnboarding_StorageFailureAbortsBeforeMail(t *testing.T) {
	dispatcher := &captureDispatcher{}
	tokens := linktoken.NewService("test-secret", time.Hour)
	svc := NewService(failingStore{}, dispatcher, tokens, "https://mutualbook.app", nil)

	_, err := svc.SubmitOnboarding(context.Background(), validInput())
	if err == nil {
		t.Fatalf("expected storage error")
	}
	var vErr *funnel.ValidationError
	if errors.As(err, &vErr) {
		t.Fatalf("storage fault must not surface as validation error")
	}
	if len(dispatcher.sent) != 0 {
		t.Fatalf("storage failure must abort before dispatch")
	}
}

func TestSubmitOnboarding_DuplicatesCreateDistinctEntries(t *testing.T) {
	svc, _ := newTestService(&captureDispatcher{})

	first, err := svc.SubmitOnboarding(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := svc.SubmitOnboarding(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("createdAt must be non-decreasing")
	}
}

func TestResendEmail_ReusesExistingEntry(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc, _ := newTestService(dispatcher)

	if _, err := svc.SubmitOnboarding(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := svc.ResendEmail(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(dispatcher.sent) != 2 {
		t.Fatalf("expected 2 dispatched mails, got %d", len(dispatcher.sent))
	}
	if dispatcher.sent[1].entry.ID != dispatcher.sent[0].entry.ID {
		t.Fatalf("resend must reuse the existing entry, not fabricate one")
	}
}

func TestResendEmail_UnknownEmailIsNotFound(t *testing.T) {
	dispatcher := &captureDispatcher{}
	svc, _ := newTestService(dispatcher)

	err := svc.ResendEmail(context.Background(), "nobody@b.com")
	if !errors.Is(err, funnel.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
	if len(dispatcher.sent) != 0 {
		t.Fatalf("not-found must not dispatch mail")
	}
}

func TestResendEmail_InvalidShapeRejected(t *testing.T) {
	svc, _ := newTestService(&captureDispatcher{})

	err := svc.ResendEmail(context.Background(), "not-an-email")
	var vErr *funnel.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCompleteProfile(t *testing.T) {
	svc, _ := newTestService(&captureDispatcher{})

	in := funnel.ProfileInput{
		OnboardingID:      1,
		FullName:          "Ada Lovelace",
		Bio:               "First programmer",
		PersonalityTraits: []string{"Analytical"},
		Goals:             "Mentor others",
	}
	prof, err := svc.CompleteProfile(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if prof.ID == 0 || prof.CreatedAt.IsZero() {
		t.Fatalf("expected assigned id and createdAt, got %+v", prof)
	}
	if prof.FullName != in.FullName || prof.Goals != in.Goals {
		t.Fatalf("profile does not echo submitted fields: %+v", prof)
	}

	in.PersonalityTraits = nil
	_, err = svc.CompleteProfile(context.Background(), in)
	var vErr *funnel.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty traits, got %v", err)
	}
}
