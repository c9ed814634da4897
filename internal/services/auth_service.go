// internal/services/auth_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/novamart/storefront-api/internal/config"
	"github.com/novamart/storefront-api/internal/models"
	"github.com/novamart/storefront-api/internal/store"
	"github.com/novamart/storefront-api/internal/utils"
)

// AuthService is a deliberate stub. Both login and registration wait out
// a simulated network delay and then succeed unconditionally: the
// password is never checked, and the user record is synthesized on the
// spot. Admin privilege comes solely from the hardcoded email match.
type AuthService struct {
	sessions *store.SessionStore
	cfg      *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(sessions *store.SessionStore, cfg *config.Config) *AuthService {
	return &AuthService{
		sessions: sessions,
		cfg:      cfg,
	}
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Simulate the network round trip. No cancellation path: the original
	// UI offers no way to abort a pending login.
	time.Sleep(s.cfg.Simulation.AuthDelay)

	user := &models.User{
		ID:      uuid.NewString(),
		Email:   req.Email,
		Name:    models.DisplayNameFromEmail(req.Email),
		IsAdmin: req.Email == models.AdminEmail,
	}

	return s.establishSession(user)
}

// Register behaves like Login but uses the supplied display name and
// never grants admin, even for the admin email.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	time.Sleep(s.cfg.Simulation.AuthDelay)

	user := &models.User{
		ID:      uuid.NewString(),
		Email:   req.Email,
		Name:    req.Name,
		IsAdmin: false,
	}

	return s.establishSession(user)
}

func (s *AuthService) establishSession(user *models.User) (*AuthResponse, error) {
	if err := s.sessions.Set(user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.IsAdmin, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	}).Info("Session established")

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}

func (s *AuthService) Logout() error {
	return s.sessions.Clear()
}

// CurrentUser returns the session user, which may have been restored
// from the persisted slot at startup without re-validation.
func (s *AuthService) CurrentUser() *models.User {
	return s.sessions.Current()
}
