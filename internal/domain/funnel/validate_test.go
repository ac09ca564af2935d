package funnel

import (
	"errors"
	"testing"
)

func validEntry() EntryInput {
	return EntryInput{
		UserType:    "student",
		Communities: []string{"Technology"},
		Email:       "a@b.com",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	out := map[string]string{}
	for _, f := range vErr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateEntry_Valid(t *testing.T) {
	if err := ValidateEntry(validEntry()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateEntry_OneCommunityAccepted(t *testing.T) {
	in := validEntry()
	in.Communities = []string{"Design"}
	if err := ValidateEntry(in); err != nil {
		t.Fatalf("one community must pass, got %v", err)
	}
}

func TestValidateEntry_EmptyCommunitiesRejected(t *testing.T) {
	in := validEntry()
	in.Communities = nil
	fields := fieldsOf(t, ValidateEntry(in))
	if _, ok := fields["communities"]; !ok {
		t.Fatalf("expected communities field error, got %v", fields)
	}
}

func TestValidateEntry_CollectsEveryFieldError(t *testing.T) {
	fields := fieldsOf(t, ValidateEntry(EntryInput{Email: "not-an-email"}))
	for _, want := range []string{"userType", "communities", "email"} {
		if _, ok := fields[want]; !ok {
			t.Fatalf("expected %s in field errors, got %v", want, fields)
		}
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@sub.domain.io", true},
		{"  a@b.com  ", true},
		{"", false},
		{"plain", false},
		{"missing@tld", false},
		{"@no-local.com", false},
		{"spaces in@local.com", false},
	}
	for _, c := range cases {
		if got := ValidEmail(c.email); got != c.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestValidateEmailRequest_Invalid(t *testing.T) {
	fields := fieldsOf(t, ValidateEmailRequest("nope"))
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected email field error, got %v", fields)
	}
}

func TestValidateProfile(t *testing.T) {
	valid := ProfileInput{
		OnboardingID:      1,
		FullName:          "Ada Lovelace",
		Bio:               "First programmer",
		PersonalityTraits: []string{"Analytical"},
		Goals:             "Mentor others",
	}
	if err := ValidateProfile(valid); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	noTraits := valid
	noTraits.PersonalityTraits = nil
	fields := fieldsOf(t, ValidateProfile(noTraits))
	if _, ok := fields["personalityTraits"]; !ok {
		t.Fatalf("expected personalityTraits field error, got %v", fields)
	}

	fields = fieldsOf(t, ValidateProfile(ProfileInput{}))
	for _, want := range []string{"onboardingId", "fullName", "bio", "personalityTraits", "goals"} {
		if _, ok := fields[want]; !ok {
			t.Fatalf("expected %s in field errors, got %v", want, fields)
		}
	}
}
