package repository

import (
	"context"
	"errors"

	"rootguard/internal/domain"
)

// ErrNotFound is returned by repositories when no row matches the key.
var ErrNotFound = errors.New("record not found")

// CreatePerson holds the fields accepted when inserting a person row.
// The id and the profile image default come back from the store.
type CreatePerson struct {
	Firstname  string
	Middlename *string
	Lastname   string
	Sex        domain.Sex
}

// PersonRepository defines persistence operations for Person records.
// Every update touches a single field and returns the row as the store
// holds it afterwards.
type PersonRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, data CreatePerson) (*domain.Person, error)
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	UpdateFirstname(ctx context.Context, id int64, firstname string) (*domain.Person, error)
	UpdateMiddlename(ctx context.Context, id int64, middlename string) (*domain.Person, error)
	UpdateLastname(ctx context.Context, id int64, lastname string) (*domain.Person, error)
	UpdateSex(ctx context.Context, id int64, sex domain.Sex) (*domain.Person, error)
	UpdateProfileImageURL(ctx context.Context, id int64, url string) (*domain.Person, error)
	Delete(ctx context.Context, id int64) error
}
