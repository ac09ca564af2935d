package dto

import "mutual-book/internal/domain/funnel"

// Request shapes mirror the public wire contract; field names are part of
// that contract and stay camelCase.

type SocialMediaRequest struct {
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Snapchat  string `json:"snapchat"`
	LinkedIn  string `json:"linkedin"`
}

type OnboardingRequest struct {
	UserType    string             `json:"userType"`
	Communities []string           `json:"communities"`
	SocialMedia SocialMediaRequest `json:"socialMedia"`
	Email       string             `json:"email"`
}

func (r OnboardingRequest) ToInput() funnel.EntryInput {
	return funnel.EntryInput{
		UserType:    r.UserType,
		Communities: r.Communities,
		SocialMedia: funnel.SocialLinks{
			WhatsApp:  r.SocialMedia.WhatsApp,
			Instagram: r.SocialMedia.Instagram,
			Snapchat:  r.SocialMedia.Snapchat,
			LinkedIn:  r.SocialMedia.LinkedIn,
		},
		Email: r.Email,
	}
}

type ResendEmailRequest struct {
	Email string `json:"email"`
}
