package repository_test

import (
	"context"
	"testing"

	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	missing, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)

	created, err := repo.Create(ctx, "admin@example.com", "hash-1")
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	require.NoError(t, repo.UpdatePassword(ctx, created.ID, "hash-2"))
	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "hash-2", byID.PasswordHash)

	_, err = repo.Create(ctx, "admin@example.com", "dup")
	require.Error(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
