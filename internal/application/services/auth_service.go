package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/domain/user"
	"github.com/ComboLab/combolab-go/internal/infrastructure/email"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/security"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// AuthService handles account registration, login, and favorites.
type AuthService struct {
	userRepo     repositories.UserRepository
	emailService email.Service
	logger       *logging.ChanneledLogger
}

// NewAuthService creates a new auth application service. The email service
// may be nil when no provider is configured; welcome emails are then skipped.
func NewAuthService(userRepo repositories.UserRepository, emailService email.Service, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
	}
}

// AuthResult carries the authenticated profile and its signed token.
type AuthResult struct {
	Profile *user.Profile `json:"profile"`
	Token   string        `json:"token"`
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(emailAddr, username, password string) (*AuthResult, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" || !strings.Contains(emailAddr, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("account already exists for %s", emailAddr)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		ID:           security.GenerateULID(),
		Email:        emailAddr,
		Username:     username,
		PasswordHash: hash,
		Favorites:    user.Favorites{Characters: []string{}, Combos: []string{}},
		Created:      time.Now().UTC(),
	}

	if err := s.userRepo.Store(u); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	s.logger.LogAuthOperation("register", u.ID, true)

	if s.emailService != nil {
		// Welcome email is best effort.
		if err := s.emailService.SendWelcomeEmail(u.Email, u.Username); err != nil {
			s.logger.Email().Warn("Failed to send welcome email", "error", err.Error(), "userId", u.ID)
		}
	}

	return s.issueToken(u)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(emailAddr, password string) (*AuthResult, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if u == nil || !security.CheckPassword(password, u.PasswordHash) {
		s.logger.LogAuthOperation("login", emailAddr, false)
		return nil, fmt.Errorf("invalid credentials")
	}

	s.logger.LogAuthOperation("login", u.ID, true)
	return s.issueToken(u)
}

// GetProfile loads the public profile and favorites for a user.
func (s *AuthService) GetProfile(userID string) (*user.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return u, nil
}

// ToggleFavoriteCharacter adds or removes a character from a user's favorites.
func (s *AuthService) ToggleFavoriteCharacter(userID, characterID string) (*user.Favorites, error) {
	return s.toggleFavorite(userID, characterID, true)
}

// ToggleFavoriteCombo adds or removes a combo from a user's favorites.
func (s *AuthService) ToggleFavoriteCombo(userID, comboID string) (*user.Favorites, error) {
	return s.toggleFavorite(userID, comboID, false)
}

func (s *AuthService) toggleFavorite(userID, targetID string, character bool) (*user.Favorites, error) {
	if targetID == "" {
		return nil, fmt.Errorf("target ID cannot be empty")
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	if character {
		u.Favorites.Characters = toggleUserID(u.Favorites.Characters, targetID)
	} else {
		u.Favorites.Combos = toggleUserID(u.Favorites.Combos, targetID)
	}

	if err := s.userRepo.UpdateFavorites(u.ID, &u.Favorites); err != nil {
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}
	return &u.Favorites, nil
}

func (s *AuthService) issueToken(u *user.User) (*AuthResult, error) {
	profile := u.PublicProfile()
	token, err := security.GenerateUserToken(profile, config.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Profile: profile, Token: token}, nil
}
