package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestContactRepository_CreateDefaultsStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Contact{Name: "Ann", Email: "ann@example.com", Message: "Hi"})
	require.NoError(t, err)
	require.Equal(t, model.ContactStatusNew, created.Status)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ann", fetched.Name)
	require.Nil(t, fetched.Subject)
	require.Equal(t, model.ContactStatusNew, fetched.Status)
}

func TestContactRepository_ListStatusAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	first := testutil.SeedContact(t, db, "first", model.ContactStatusNew)
	second := testutil.SeedContact(t, db, "second", model.ContactStatusNew)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Equal(t, second.ID, contacts[0].ID)
	require.Equal(t, first.ID, contacts[1].ID)

	updated, err := repo.UpdateStatus(ctx, first.ID, model.ContactStatusReplied)
	require.NoError(t, err)
	require.Equal(t, model.ContactStatusReplied, updated.Status)

	status := model.ContactStatusNew
	unread, err := repo.Count(ctx, &status)
	require.NoError(t, err)
	require.Equal(t, 1, unread)

	total, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 2, total)
}

func TestContactRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	contact := testutil.SeedContact(t, db, "edit", model.ContactStatusRead)
	contact.Subject = stringPtr("Re: hello")
	contact.Message = "edited"

	updated, err := repo.Update(ctx, contact)
	require.NoError(t, err)
	require.Equal(t, "Re: hello", *updated.Subject)
	require.Equal(t, "edited", updated.Message)
	require.Equal(t, model.ContactStatusRead, updated.Status)

	require.NoError(t, repo.Delete(ctx, contact.ID))
	require.True(t, errors.Is(repo.Delete(ctx, contact.ID), sql.ErrNoRows))

	_, err = repo.UpdateStatus(ctx, contact.ID, model.ContactStatusArchived)
	require.True(t, errors.Is(err, sql.ErrNoRows))
}
