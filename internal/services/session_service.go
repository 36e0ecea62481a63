package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vivek9939947227/Asprints-Aada/internal/auth"
	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/store"
	"github.com/Vivek9939947227/Asprints-Aada/internal/utils"
)

// ISessionService manages the session user. There is no credential store:
// identity is declared at login, captured into listings as OwnerID, and
// carried by the JWT afterwards. The store mirrors the last session user so
// a restart can restore it.
type ISessionService interface {
	Login(ctx context.Context, name, email string, role models.Role) (*models.User, string, error)
	Current(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	store store.Store
	cfg   *config.Config
}

// NewSessionService creates a new session service.
func NewSessionService(st store.Store, cfg *config.Config) ISessionService {
	return &sessionService{store: st, cfg: cfg}
}

// Login establishes a session user and returns it with a signed token.
// The admin role is never taken from the request: it is granted only when
// the login email matches the configured platform address.
func (s *sessionService) Login(ctx context.Context, name, email string, role models.Role) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, "", errors.New("name and email are required")
	}

	switch role {
	case models.RoleUser, models.RoleOwner:
	default:
		role = models.RoleUser
	}
	if strings.EqualFold(email, s.cfg.PlatformEmail) {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:    utils.NewID(),
		Name:  name,
		Email: email,
		Role:  role,
	}

	token, err := auth.GenerateJWT(user, s.cfg.JwtSecret, s.cfg.JwtTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to persist session user: %w", err)
	}

	return user, token, nil
}

// Current returns the mirrored session user, or nil when logged out.
func (s *sessionService) Current(ctx context.Context) (*models.User, error) {
	user, err := s.store.LoadUser(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the mirrored session user. Issued tokens simply expire.
func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.ClearUser(ctx)
}
