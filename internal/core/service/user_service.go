package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
	"github.com/kukuhtri1999/BodySync/internal/pkg/password"
)

type userService struct {
	users ports.UserRepository
	audit auditor
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) ports.UserService {
	return &userService{users: users, audit: newAuditor(audit), log: log}
}

func (s *userService) List(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile overwrites the profile fields. A new password needs the
// current one; a current password given on its own must still match.
func (s *userService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	current, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	hash := current.PasswordHash
	switch {
	case in.NewPassword != "":
		if in.CurrentPassword == "" || !password.Verify(in.CurrentPassword, current.PasswordHash) {
			return nil, domain.ErrIncorrectPassword
		}
		if hash, err = password.Hash(in.NewPassword); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
	case in.CurrentPassword != "":
		if !password.Verify(in.CurrentPassword, current.PasswordHash) {
			return nil, domain.ErrIncorrectPassword
		}
	}

	updated, err := s.users.Update(ctx, &domain.User{
		ID:           current.ID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Height:       in.Height,
		Weight:       in.Weight,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.audit.record(ctx, domain.ActionUpdated, domain.EntityUser, updated.ID, updated.ID)
	s.log.Info().Int64("user_id", updated.ID).Bool("password_changed", in.NewPassword != "").Msg("profile updated")
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.audit.record(ctx, domain.ActionDeleted, domain.EntityUser, id, id)
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
