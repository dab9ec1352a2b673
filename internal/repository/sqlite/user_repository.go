package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rootguard/internal/domain"
	"rootguard/internal/repository"
)

const createGuardTable = `
CREATE TABLE IF NOT EXISTS guard (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	admin BOOLEAN NOT NULL DEFAULT 0,
	disabled BOOLEAN NOT NULL DEFAULT 0,
	person_id INTEGER NOT NULL REFERENCES person (id),
	time_registered DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createGuardTable); err != nil {
		return fmt.Errorf("create guard table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, data repository.CreateUser) (*domain.User, error) {
	id := uuid.NewString()
	registered := time.Now().UTC()

	if _, err := r.db.ExecContext(ctx, `
INSERT INTO guard (id, email, password, admin, disabled, person_id, time_registered)
VALUES (?, ?, ?, ?, 0, ?, ?)`,
		id,
		data.Email,
		data.Password,
		data.Admin,
		data.PersonID,
		registered,
	); err != nil {
		return nil, fmt.Errorf("insert guard: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password, admin, disabled, person_id, time_registered
FROM guard
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password, admin, disabled, person_id, time_registered
FROM guard
WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

// EmailTaken reports whether any guard row carries the email, compared
// case-insensitively.
func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM guard WHERE LOWER(email) = LOWER(?)`,
		email,
	).Scan(&count); err != nil {
		return false, fmt.Errorf("count guard by email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateEmail(ctx context.Context, id string, email string) (*domain.User, error) {
	return r.updateField(ctx, id, "email", email)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id string, password string) (*domain.User, error) {
	return r.updateField(ctx, id, "password", password)
}

func (r *UserRepository) UpdateAdmin(ctx context.Context, id string, admin bool) (*domain.User, error) {
	return r.updateField(ctx, id, "admin", admin)
}

func (r *UserRepository) UpdateDisabled(ctx context.Context, id string, disabled bool) (*domain.User, error) {
	return r.updateField(ctx, id, "disabled", disabled)
}

func (r *UserRepository) updateField(ctx context.Context, id string, column string, value any) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE guard SET %s = ? WHERE id = ?`, column),
		value, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update guard %s: %w", column, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update guard %s rows affected: %w", column, err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Admin,
		&user.Disabled,
		&user.PersonID,
		&user.TimeRegistered,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan guard: %w", err)
	}
	return &user, nil
}
