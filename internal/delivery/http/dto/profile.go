package dto

import "mutual-book/internal/domain/funnel"

type CompleteProfileRequest struct {
	OnboardingID      int      `json:"onboardingId"`
	FullName          string   `json:"fullName"`
	Bio               string   `json:"bio"`
	PersonalityTraits []string `json:"personalityTraits"`
	Goals             string   `json:"goals"`
}

func (r CompleteProfileRequest) ToInput() funnel.ProfileInput {
	return funnel.ProfileInput{
		OnboardingID:      r.OnboardingID,
		FullName:          r.FullName,
		Bio:               r.Bio,
		PersonalityTraits: r.PersonalityTraits,
		Goals:             r.Goals,
	}
}

// CompleteProfileResponse echoes the stored profile back to the caller.
type CompleteProfileResponse struct {
	Success bool           `json:"success"`
	Profile funnel.Profile `json:"profile"`
}
