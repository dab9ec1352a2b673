package repository

import (
	"context"

	"rootguard/internal/domain"
)

// CreateUser holds the fields accepted when inserting a guard row. The
// id and registration timestamp come back from the store.
type CreateUser struct {
	Email    string
	Password string
	PersonID int64
	Admin    bool
}

// UserRepository defines persistence operations for User (guard)
// records. EmailTaken compares emails case-insensitively.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, data CreateUser) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdateEmail(ctx context.Context, id string, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, password string) (*domain.User, error)
	UpdateAdmin(ctx context.Context, id string, admin bool) (*domain.User, error)
	UpdateDisabled(ctx context.Context, id string, disabled bool) (*domain.User, error)
}
