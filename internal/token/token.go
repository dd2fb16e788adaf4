package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"edudash/internal/models"
)

var (
	// ErrExpired means the token was once valid but its window has passed.
	// Callers should prompt the client to log in again.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers signature mismatch and structural corruption.
	ErrInvalid = errors.New("invalid token")
)

// Service issues and verifies signed session tokens. The signing secret is
// process-wide and read-only after startup; rotating it invalidates all
// outstanding tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token binding the user's identity and current role.
func (s *Service) Issue(user *models.User) (string, time.Time, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := &models.Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a token, returning its claims. Expired and
// invalid tokens are distinct failures so callers can message clients
// correctly.
func (s *Service) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	if _, ok := models.ParseRole(string(claims.Role)); !ok {
		return nil, ErrInvalid
	}
	return claims, nil
}
