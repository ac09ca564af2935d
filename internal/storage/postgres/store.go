package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mutual-book/internal/database"
	"mutual-book/internal/domain/funnel"

	"github.com/jackc/pgx/v5"
)

// Store is the durable funnel.Store over onboarding_entries and profiles.
type Store struct {
	db database.DB
}

func NewStore(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateOnboardingEntry(ctx context.Context, in funnel.EntryInput) (funnel.OnboardingEntry, error) {
	communities, err := json.Marshal(in.Communities)
	if err != nil {
		return funnel.OnboardingEntry{}, fmt.Errorf("encode communities: %w", err)
	}
	social, err := json.Marshal(in.SocialMedia)
	if err != nil {
		return funnel.OnboardingEntry{}, fmt.Errorf("encode social media: %w", err)
	}

	entry := funnel.OnboardingEntry{
		UserType:    in.UserType,
		Communities: in.Communities,
		SocialMedia: in.SocialMedia,
		Email:       in.Email,
	}
	row := s.db.QueryRow(
		ctx,
		`INSERT INTO onboarding_entries (user_type, communities, social_media, email)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		in.UserType, communities, social, in.Email,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return funnel.OnboardingEntry{}, err
	}
	return entry, nil
}

func (s *Store) GetOnboardingEntryByEmail(ctx context.Context, email string) (funnel.OnboardingEntry, error) {
	row := s.db.QueryRow(
		ctx,
		`SELECT id, user_type, communities, social_media, email, created_at
		 FROM onboarding_entries
		 WHERE email = $1
		 ORDER BY id
		 LIMIT 1`,
		email,
	)
	return scanEntry(row)
}

func (s *Store) CreateProfile(ctx context.Context, in funnel.ProfileInput) (funnel.Profile, error) {
	traits, err := json.Marshal(in.PersonalityTraits)
	if err != nil {
		return funnel.Profile{}, fmt.Errorf("encode traits: %w", err)
	}

	prof := funnel.Profile{
		OnboardingID:      in.OnboardingID,
		FullName:          in.FullName,
		Bio:               in.Bio,
		PersonalityTraits: in.PersonalityTraits,
		Goals:             in.Goals,
	}
	row := s.db.QueryRow(
		ctx,
		`INSERT INTO profiles (onboarding_id, full_name, bio, personality_traits, goals)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		in.OnboardingID, in.FullName, in.Bio, traits, in.Goals,
	)
	if err := row.Scan(&prof.ID, &prof.CreatedAt); err != nil {
		return funnel.Profile{}, err
	}
	return prof, nil
}

func scanEntry(row database.Row) (funnel.OnboardingEntry, error) {
	var e funnel.OnboardingEntry
	var communities, social []byte

	err := row.Scan(&e.ID, &e.UserType, &communities, &social, &e.Email, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return funnel.OnboardingEntry{}, funnel.ErrEntryNotFound
		}
		return funnel.OnboardingEntry{}, err
	}

	if err := json.Unmarshal(communities, &e.Communities); err != nil {
		return funnel.OnboardingEntry{}, fmt.Errorf("decode communities: %w", err)
	}
	if err := json.Unmarshal(social, &e.SocialMedia); err != nil {
		return funnel.OnboardingEntry{}, fmt.Errorf("decode social media: %w", err)
	}
	return e, nil
}
