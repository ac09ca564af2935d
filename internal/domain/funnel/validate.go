package funnel

import (
	"regexp"
	"strings"
)

// emailRe accepts the local@domain.tld shape the product has always
// required; anything stricter rejects addresses the wizard accepted.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failing field, not just the first, so
// the client can mark all of them in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidateEntry checks an onboarding submission. Pure: no side effects,
// no catalog enforcement (the fixed community list is a UI concern).
func ValidateEntry(in EntryInput) error {
	var fields []FieldError

	if strings.TrimSpace(in.UserType) == "" {
		fields = append(fields, FieldError{Field: "userType", Message: "user type is required"})
	}
	if len(in.Communities) == 0 {
		fields = append(fields, FieldError{Field: "communities", Message: "select at least one community"})
	}
	if !ValidEmail(in.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "enter a valid email address"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateEmailRequest checks the resend payload.
func ValidateEmailRequest(email string) error {
	if !ValidEmail(email) {
		return &ValidationError{Fields: []FieldError{
			{Field: "email", Message: "enter a valid email address"},
		}}
	}
	return nil
}

// ValidateProfile checks a complete-profile submission. The onboarding id
// only has to be a positive integer; whether it names a real entry is
// deliberately not checked.
func ValidateProfile(in ProfileInput) error {
	var fields []FieldError

	if in.OnboardingID <= 0 {
		fields = append(fields, FieldError{Field: "onboardingId", Message: "onboarding id is required"})
	}
	if strings.TrimSpace(in.FullName) == "" {
		fields = append(fields, FieldError{Field: "fullName", Message: "full name is required"})
	}
	if strings.TrimSpace(in.Bio) == "" {
		fields = append(fields, FieldError{Field: "bio", Message: "bio is required"})
	}
	if len(in.PersonalityTraits) == 0 {
		fields = append(fields, FieldError{Field: "personalityTraits", Message: "select at least one trait"})
	}
	if strings.TrimSpace(in.Goals) == "" {
		fields = append(fields, FieldError{Field: "goals", Message: "goals are required"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
