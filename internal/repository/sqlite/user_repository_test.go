package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootguard/internal/domain"
	"rootguard/internal/repository"
)

func createTestPerson(t *testing.T, db *sql.DB) *domain.Person {
	t.Helper()

	person, err := NewPersonRepository(db).Create(context.Background(), repository.CreatePerson{
		Firstname: "Root",
		Lastname:  "Owner",
		Sex:       domain.SexMale,
	})
	require.NoError(t, err)
	return person
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	person := createTestPerson(t, db)

	user, err := repo.Create(context.Background(), repository.CreateUser{
		Email:    "root@example.com",
		Password: "secret",
		PersonID: person.ID,
		Admin:    true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "root@example.com", user.Email)
	assert.Equal(t, "secret", user.Password)
	assert.True(t, user.Admin)
	assert.False(t, user.Disabled)
	assert.Equal(t, person.ID, user.PersonID)
	assert.False(t, user.TimeRegistered.IsZero())
}

func TestUserRepository_CreateRequiresPerson(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	// no person row with this id, the foreign key rejects the insert
	_, err := repo.Create(context.Background(), repository.CreateUser{
		Email:    "root@example.com",
		Password: "secret",
		PersonID: 9999,
	})
	require.Error(t, err)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	person := createTestPerson(t, db)
	ctx := context.Background()

	created, err := repo.Create(ctx, repository.CreateUser{
		Email:    "root@example.com",
		Password: "secret",
		PersonID: person.ID,
	})
	require.NoError(t, err)

	fetched, err := repo.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_EmailTakenIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	person := createTestPerson(t, db)
	ctx := context.Background()

	_, err := repo.Create(ctx, repository.CreateUser{
		Email:    "Root@Example.com",
		Password: "secret",
		PersonID: person.ID,
	})
	require.NoError(t, err)

	taken, err := repo.EmailTaken(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "other@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_UpdateSingleField(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	person := createTestPerson(t, db)
	ctx := context.Background()

	user, err := repo.Create(ctx, repository.CreateUser{
		Email:    "root@example.com",
		Password: "secret",
		PersonID: person.ID,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateDisabled(ctx, user.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Disabled)

	// other fields untouched
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.Password, updated.Password)
	assert.Equal(t, user.Admin, updated.Admin)
	assert.Equal(t, user.PersonID, updated.PersonID)
	assert.Equal(t, user.TimeRegistered.Unix(), updated.TimeRegistered.Unix())
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.UpdatePassword(context.Background(), "no-such-id", "pw")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
