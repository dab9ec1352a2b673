package service

import (
	"context"
	"errors"
	"strings"

	"rootguard/internal/apperr"
	"rootguard/internal/domain"
	"rootguard/internal/repository"
)

// UserService describes guard (credential) lifecycle operations. Email
// uniqueness is checked case-insensitively, both at creation and when
// updating the address. No delete is exposed.
type UserService interface {
	Create(ctx context.Context, data repository.CreateUser) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateEmail(ctx context.Context, id string, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, password string) (*domain.User, error)
	UpdateAdminStatus(ctx context.Context, id string, admin bool) (*domain.User, error)
	UpdateActiveStatus(ctx context.Context, id string, active bool) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, data repository.CreateUser) (*domain.User, error) {
	taken, err := s.users.EmailTaken(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.EmailUnavailable(data.Email)
	}
	return s.users.Create(ctx, data)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, translateUserErr(id, err)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, translateUserErr(email, err)
	}
	return user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, id string, email string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, translateUserErr(id, err)
	}

	// the user keeping (or re-casing) their own address is not a conflict
	if !strings.EqualFold(user.Email, email) {
		taken, err := s.users.EmailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.EmailUnavailable(email)
		}
	}

	updated, err := s.users.UpdateEmail(ctx, id, email)
	if err != nil {
		return nil, translateUserErr(id, err)
	}
	return updated, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id string, password string) (*domain.User, error) {
	user, err := s.users.UpdatePassword(ctx, id, password)
	if err != nil {
		return nil, translateUserErr(id, err)
	}
	return user, nil
}

func (s *userService) UpdateAdminStatus(ctx context.Context, id string, admin bool) (*domain.User, error) {
	user, err := s.users.UpdateAdmin(ctx, id, admin)
	if err != nil {
		return nil, translateUserErr(id, err)
	}
	return user, nil
}

// UpdateActiveStatus sets the disabled flag to the inverse of active.
func (s *userService) UpdateActiveStatus(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.users.UpdateDisabled(ctx, id, !active)
	if err != nil {
		return nil, translateUserErr(id, err)
	}
	return user, nil
}

func translateUserErr(identifier string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.UserDoesNotExist(identifier)
	}
	return err
}
