package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootguard/internal/apperr"
	"rootguard/internal/domain"
)

func TestPersonService_GetByIDMissing(t *testing.T) {
	persons, _ := newTestServices(t)

	_, err := persons.GetByID(context.Background(), 42)
	require.Error(t, err)

	appErr, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Equal(t, "Person 42 can not be found", appErr.Message)
}

func TestPersonService_DeleteMissing(t *testing.T) {
	persons, _ := newTestServices(t)

	err := persons.Delete(context.Background(), 7)
	require.Error(t, err)

	appErr, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("Person %d can not be found", 7), appErr.Message)
}

func TestPersonService_UpdateReflectsStore(t *testing.T) {
	persons, _ := newTestServices(t)
	ctx := context.Background()
	person := createPersonFixture(t, persons)

	updated, err := persons.UpdateSex(ctx, person.ID, domain.SexFemale)
	require.NoError(t, err)
	assert.Equal(t, domain.SexFemale, updated.Sex)
	assert.Equal(t, person.Firstname, updated.Firstname)

	fetched, err := persons.GetByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SexFemale, fetched.Sex)
}

func TestPersonService_UpdateMiddlename(t *testing.T) {
	persons, _ := newTestServices(t)
	ctx := context.Background()
	person := createPersonFixture(t, persons)
	require.Nil(t, person.Middlename)

	updated, err := persons.UpdateMiddlename(ctx, person.ID, "Quincy")
	require.NoError(t, err)
	require.NotNil(t, updated.Middlename)
	assert.Equal(t, "Quincy", *updated.Middlename)
}
