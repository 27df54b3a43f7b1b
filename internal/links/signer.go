// Package links builds the public URLs embedded in notifications and signs
// the unsubscribe tokens they carry.
package links

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer              = "flight-price-tracker"
	unsubscribeAudience = "unsubscribe"
)

// ErrInvalidToken is returned for a token that is malformed, expired, or not
// signed with the configured secret.
var ErrInvalidToken = errors.New("invalid token")

// Signer issues and verifies HS256 unsubscribe tokens whose subject is the
// alert ID.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithNowFunc sets the clock used for issuing and validating tokens.
func WithNowFunc(fn func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = fn
	}
}

// NewSigner creates a Signer. A zero ttl issues tokens without expiry.
func NewSigner(secret string, ttl time.Duration, opts ...SignerOption) *Signer {
	s := &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns a token authorizing deletion of alertID.
func (s *Signer) Sign(alertID string) (string, error) {
	if alertID == "" {
		return "", errors.New("signing token: empty alert id")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  alertID,
		Audience: jwt.ClaimStrings{unsubscribeAudience},
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks token and returns the alert ID it was issued for.
func (s *Signer) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(unsubscribeAudience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
