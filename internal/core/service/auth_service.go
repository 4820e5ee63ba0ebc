package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
	"github.com/kukuhtri1999/BodySync/internal/pkg/password"
)

// TokenIssuer abstracts the JWT manager.
type TokenIssuer interface {
	Issue(userID int64) (token string, expiresAt time.Time, err error)
}

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens TokenIssuer
	audit  auditor
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens TokenIssuer, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, audit: newAuditor(audit), log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Height:       in.Height,
		Weight:       in.Weight,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.audit.record(ctx, domain.ActionRegistered, domain.EntityUser, created.ID, created.ID)
	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password yield the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.audit.record(ctx, domain.ActionLoggedIn, domain.EntityUser, user.ID, user.ID)
	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{Token: tok, ExpiresAt: expiresAt, User: user}, nil
}
