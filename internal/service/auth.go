package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"edudash/internal/crypto"
	"edudash/internal/models"
	"edudash/internal/repository"
	"edudash/internal/token"
)

var (
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	Logout(userID string) error
	CurrentUser(userID string) (*models.User, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *token.Service
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(repo repository.UserRepository, tokens *token.Service, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// normalizeEmail lowercases and trims the login key. All store lookups and
// writes go through this so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(input RegisterInput) (*models.User, string, error) {
	role := input.Role
	if role == "" {
		role = models.RoleStudent
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		LastActive:   now,
	}

	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	signed, _, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, signed, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.repo.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := crypto.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastActive(user.ID, now); err != nil {
		s.logger.Error("Failed to update last active", zap.Error(err))
		return nil, "", fmt.Errorf("failed to update activity: %w", err)
	}
	user.LastActive = now

	signed, _, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, signed, nil
}

// Logout only touches activity; tokens are stateless and discarded
// client-side, so a repeated logout with the same token succeeds as well.
func (s *authService) Logout(userID string) error {
	if err := s.repo.UpdateLastActive(userID, s.now().UTC()); err != nil {
		s.logger.Error("Failed to update last active on logout", zap.Error(err))
		return fmt.Errorf("failed to update activity: %w", err)
	}
	s.logger.Info("User logged out", zap.String("user_id", userID))
	return nil
}

func (s *authService) CurrentUser(userID string) (*models.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Failed to get user by id", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}
