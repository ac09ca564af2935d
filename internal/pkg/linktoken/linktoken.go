// Package linktoken mints the signed token embedded in continuation
// links. The token carries the entry id and a fixed expiry window; the
// window is stated in the email but the follow-up endpoints never verify
// the token, so an expired link still loads the form.
package linktoken

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("link token expired")
	ErrTokenInvalid = errors.New("link token invalid")
)

type Claims struct {
	OnboardingID int    `json:"onboarding_id"`
	Email        string `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Generate(onboardingID int, email string) (string, error) {
	if len(s.secret) == 0 || s.ttl <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		OnboardingID: onboardingID,
		Email:        email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Parse validates a token signature and expiry. Nothing in the funnel
// calls it on the request path; it exists for tooling and tests.
func (s *Service) Parse(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(_ *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
