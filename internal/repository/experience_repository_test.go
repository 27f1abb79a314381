package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestExperienceRepository_ListOrderedByStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExperienceRepository(db)
	ctx := context.Background()

	older := testutil.SeedExperience(t, db, date(2019, 3, 1), false, map[string]string{"en": "Acme"})
	newer := testutil.SeedExperience(t, db, date(2022, 6, 15), true, map[string]string{"en": "Globex", "az": "Qlobeks"})

	experiences, err := repo.List(ctx, repository.ExperienceFilter{Languages: []string{"en"}})
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	require.Equal(t, newer.ID, experiences[0].ID)
	require.Equal(t, older.ID, experiences[1].ID)
	require.Equal(t, date(2022, 6, 15), experiences[0].StartDate)

	current, err := repo.List(ctx, repository.ExperienceFilter{CurrentOnly: true, Languages: []string{"az"}})
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, "Qlobeks", current[0].Translations[0].Company)
}

func TestExperienceRepository_UpdateAndEndDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExperienceRepository(db)
	ctx := context.Background()

	experience := testutil.SeedExperience(t, db, date(2020, 1, 1), true, map[string]string{"en": "Initech"})
	require.Nil(t, experience.EndDate)

	end := date(2021, 12, 31)
	experience.EndDate = &end
	experience.Current = false
	updated, err := repo.Update(ctx, experience, []model.ExperienceTranslation{
		{Language: "en", Company: "Initech", Position: "Lead", Description: "Led things"},
		{Language: "ru", Company: "Инитек", Position: "Лид", Description: "Руководил"},
	})
	require.NoError(t, err)
	require.False(t, updated.Current)
	require.NotNil(t, updated.EndDate)
	require.Equal(t, end, *updated.EndDate)
	require.Len(t, updated.Translations, 2)

	_, err = repo.Update(ctx, model.Experience{ID: 777, StartDate: end}, nil)
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestExperienceRepository_CreateStoresCalendarDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExperienceRepository(db)
	ctx := context.Background()

	baku := time.FixedZone("AZT", 4*60*60)
	end := time.Date(2022, 6, 1, 2, 30, 0, 0, baku)
	created, err := repo.Create(ctx, model.Experience{
		StartDate: time.Date(2021, 3, 1, 18, 45, 0, 0, time.UTC),
		EndDate:   &end,
		Translations: []model.ExperienceTranslation{
			{Language: "en", Company: "Acme", Position: "Engineer", Description: "d"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, date(2021, 3, 1), created.StartDate)
	require.Equal(t, date(2022, 5, 31), *created.EndDate)

	stored, err := repo.GetByID(ctx, created.ID, nil)
	require.NoError(t, err)
	require.Equal(t, created.StartDate, stored.StartDate)
	require.Equal(t, *created.EndDate, *stored.EndDate)

	stored.StartDate = time.Date(2021, 4, 2, 23, 59, 0, 0, time.UTC)
	updated, err := repo.Update(ctx, stored, nil)
	require.NoError(t, err)
	require.Equal(t, date(2021, 4, 2), updated.StartDate)
}
