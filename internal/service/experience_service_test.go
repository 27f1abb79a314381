package service_test

import (
	"context"
	"testing"
	"time"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/testutil"
	"portfolio/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestExperienceService_ProjectionAndOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewExperienceService(repository.NewExperienceRepository(db), service.PolicyStrict)
	ctx := context.Background()

	translations := func(company string) []model.ExperienceTranslation {
		return []model.ExperienceTranslation{
			{Language: "en", Company: company, Position: "Engineer", Description: "Built things"},
			{Language: "ru", Company: company + " RU", Position: "Инженер", Description: "Строил"},
		}
	}

	past, err := svc.Create(ctx, service.ExperienceInput{
		StartDate:    day(2018, 1, 1),
		EndDate:      ptrTime(day(2020, 6, 30)),
		Translations: translations("Acme"),
	})
	require.NoError(t, err)
	current, err := svc.Create(ctx, service.ExperienceInput{
		StartDate:    day(2021, 2, 1),
		Current:      true,
		Technologies: []string{"Go"},
		Translations: translations("Globex"),
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, "ru")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, current.ID, list[0].ID)
	require.Equal(t, "Globex RU", list[0].Company)
	require.Equal(t, "Инженер", list[0].Position)
	require.Equal(t, past.ID, list[1].ID)

	currentOnly, err := svc.ListCurrent(ctx, "en")
	require.NoError(t, err)
	require.Len(t, currentOnly, 1)
	require.Equal(t, "Globex", currentOnly[0].Company)

	_, err = svc.List(ctx, "az")
	require.ErrorIs(t, err, service.ErrMissingTranslation)
}

func TestExperienceService_UpdatePeriod(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewExperienceService(repository.NewExperienceRepository(db), service.PolicyStrict)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.ExperienceInput{
		StartDate: day(2021, 2, 1),
		Current:   true,
		Translations: []model.ExperienceTranslation{
			{Language: "en", Company: "Globex", Position: "Engineer", Description: "d"},
		},
	})
	require.NoError(t, err)

	ended, err := svc.Update(ctx, created.ID, service.ExperiencePatch{
		EndDate: service.Optional[time.Time]{Set: true, Value: ptrTime(day(2023, 3, 31))},
		Current: boolPtr(false),
	})
	require.NoError(t, err)
	require.False(t, ended.Current)
	require.Equal(t, day(2023, 3, 31), *ended.EndDate)

	_, err = svc.Update(ctx, created.ID, service.ExperiencePatch{
		StartDate: ptrTime(day(2024, 1, 1)),
	})
	require.ErrorIs(t, err, service.ErrInvalid)

	cleared, err := svc.Update(ctx, created.ID, service.ExperiencePatch{
		EndDate: service.Optional[time.Time]{Set: true},
	})
	require.NoError(t, err)
	require.Nil(t, cleared.EndDate)
}

func TestExperienceService_CreateRequiresStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewExperienceService(repository.NewExperienceRepository(db), service.PolicyStrict)

	_, err := svc.Create(context.Background(), service.ExperienceInput{
		Translations: []model.ExperienceTranslation{
			{Language: "en", Company: "Globex", Position: "Engineer", Description: "d"},
		},
	})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
