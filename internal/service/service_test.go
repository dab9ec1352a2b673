package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rootguard/internal/domain"
	"rootguard/internal/repository"
	"rootguard/internal/repository/sqlite"
)

func newTestServices(t *testing.T) (PersonService, UserService) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	personRepo := sqlite.NewPersonRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	require.NoError(t, personRepo.Init(ctx))
	require.NoError(t, userRepo.Init(ctx))

	return NewPersonService(personRepo), NewUserService(userRepo)
}

func createPersonFixture(t *testing.T, persons PersonService) *domain.Person {
	t.Helper()

	person, err := persons.Create(context.Background(), repository.CreatePerson{
		Firstname: "Root",
		Lastname:  "Owner",
		Sex:       domain.SexMale,
	})
	require.NoError(t, err)
	return person
}
