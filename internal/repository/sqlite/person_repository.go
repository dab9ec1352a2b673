package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rootguard/internal/domain"
	"rootguard/internal/repository"
)

const createPersonTable = `
CREATE TABLE IF NOT EXISTS person (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	firstname TEXT NOT NULL,
	middlename TEXT,
	lastname TEXT NOT NULL,
	sex TEXT NOT NULL CHECK (sex IN ('male', 'female')),
	profile_image_url TEXT NOT NULL DEFAULT '/images/profile/default.png'
);
`

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) repository.PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPersonTable); err != nil {
		return fmt.Errorf("create person table: %w", err)
	}
	return nil
}

func (r *PersonRepository) Create(ctx context.Context, data repository.CreatePerson) (*domain.Person, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO person (firstname, middlename, lastname, sex)
VALUES (?, ?, ?, ?)`,
		data.Firstname,
		data.Middlename,
		data.Lastname,
		string(data.Sex),
	)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("person last insert id: %w", err)
	}

	// read back so store-side defaults (profile image) are reflected
	return r.GetByID(ctx, id)
}

func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, firstname, middlename, lastname, sex, profile_image_url
FROM person
WHERE id = ?`,
		id,
	)
	return scanPerson(row)
}

func (r *PersonRepository) UpdateFirstname(ctx context.Context, id int64, firstname string) (*domain.Person, error) {
	return r.updateField(ctx, id, "firstname", firstname)
}

func (r *PersonRepository) UpdateMiddlename(ctx context.Context, id int64, middlename string) (*domain.Person, error) {
	return r.updateField(ctx, id, "middlename", middlename)
}

func (r *PersonRepository) UpdateLastname(ctx context.Context, id int64, lastname string) (*domain.Person, error) {
	return r.updateField(ctx, id, "lastname", lastname)
}

func (r *PersonRepository) UpdateSex(ctx context.Context, id int64, sex domain.Sex) (*domain.Person, error) {
	return r.updateField(ctx, id, "sex", string(sex))
}

func (r *PersonRepository) UpdateProfileImageURL(ctx context.Context, id int64, url string) (*domain.Person, error) {
	return r.updateField(ctx, id, "profile_image_url", url)
}

// updateField writes a single column keyed by id, then re-reads the row
// so the caller sees the store's state rather than the input.
func (r *PersonRepository) updateField(ctx context.Context, id int64, column string, value any) (*domain.Person, error) {
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE person SET %s = ? WHERE id = ?`, column),
		value, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update person %s: %w", column, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update person %s rows affected: %w", column, err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM person WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete person rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPerson(row interface {
	Scan(dest ...any) error
}) (*domain.Person, error) {
	var person domain.Person
	if err := row.Scan(
		&person.ID,
		&person.Firstname,
		&person.Middlename,
		&person.Lastname,
		&person.Sex,
		&person.ProfileImageURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan person: %w", err)
	}
	return &person, nil
}
