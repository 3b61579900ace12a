package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenClaims is the typed JWT payload. The subject is the user's email.
type TokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless bearer tokens. There is no
// revocation list: a token stays valid until its expiry window elapses.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue signs a token binding the subject (and role) to a session window
// starting now.
func (s *TokenService) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// ParseClaims fully validates a token: signature, expiry, well-formedness.
func (s *TokenService) ParseClaims(raw string) (*TokenClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(raw, &TokenClaims{}, s.keyFunc)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.WithStack(jwt.ErrTokenInvalidClaims)
	}
	return claims, nil
}

// Validate fails closed: any signature mismatch, malformed token, expiry, or
// subject mismatch yields false rather than an error.
func (s *TokenService) Validate(raw, expectedSubject string) bool {
	claims, err := s.ParseClaims(raw)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

// ExtractSubject returns the embedded subject of any token whose signature
// checks out, expired or not. Used for identification and logging flows.
func (s *TokenService) ExtractSubject(raw string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(raw, &TokenClaims{}, s.keyFunc)
	if err != nil {
		return "", errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return "", errors.WithStack(jwt.ErrTokenInvalidClaims)
	}
	return claims.Subject, nil
}

func (s *TokenService) keyFunc(*jwt.Token) (interface{}, error) {
	return s.secret, nil
}
