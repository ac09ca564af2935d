package usecase

import (
	"context"

	"mutual-book/internal/domain/funnel"
	ucfunnel "mutual-book/internal/usecase/funnel"
)

type FunnelUsecase interface {
	// SubmitOnboarding validates and persists an entry, then dispatches
	// the continuation email best-effort.
	SubmitOnboarding(ctx context.Context, in funnel.EntryInput) (funnel.OnboardingEntry, error)

	// ResendEmail re-dispatches the continuation email for the first
	// stored entry matching the address.
	ResendEmail(ctx context.Context, email string) error

	// CompleteProfile validates and persists the follow-up profile.
	CompleteProfile(ctx context.Context, in funnel.ProfileInput) (funnel.Profile, error)
}

type Funnel struct {
	svc *ucfunnel.Service
}

func NewFunnelUsecase(svc *ucfunnel.Service) *Funnel {
	return &Funnel{svc: svc}
}

func (f *Funnel) SubmitOnboarding(ctx context.Context, in funnel.EntryInput) (funnel.OnboardingEntry, error) {
	return f.svc.SubmitOnboarding(ctx, in)
}

func (f *Funnel) ResendEmail(ctx context.Context, email string) error {
	return f.svc.ResendEmail(ctx, email)
}

func (f *Funnel) CompleteProfile(ctx context.Context, in funnel.ProfileInput) (funnel.Profile, error) {
	return f.svc.CompleteProfile(ctx, in)
}
