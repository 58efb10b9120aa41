package auth

import (
	"context"
	"errors"
	"time"

	"biblioteca/internal/platform/crypto"
	"biblioteca/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

const accessTokenTTL = 15 * time.Minute

// Service issues access tokens for catalog principals.
type Service struct {
	secret      string
	userService *user.Service
}

func NewService(secret string, userService *user.Service) *Service {
	return &Service{secret: secret, userService: userService}
}

// Login verifies the credentials and mints a short-lived access token
// carrying the principal's role.
func (s *Service) Login(ctx context.Context, email, password string) (string, int, error) {
	u, err := s.userService.GetByEmail(ctx, email)
	if err != nil || !crypto.VerifyPassword(u.Password, password) {
		return "", 0, ErrUnauthorized
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, u.Role, accessTokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(accessTokenTTL.Seconds()), nil
}
