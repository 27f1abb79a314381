package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/mock"
	"portfolio/backend/internal/repository/testutil"
	"portfolio/backend/internal/service"
)

func TestSummaryService_Counts(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewSummaryService(
		repository.NewProjectRepository(db),
		repository.NewExperienceRepository(db),
		repository.NewEducationRepository(db),
		repository.NewContactRepository(db),
	)

	testutil.SeedProject(t, db, true, map[string]string{"en": "One"})
	testutil.SeedProject(t, db, false, map[string]string{"en": "Two"})
	testutil.SeedExperience(t, db, day(2020, 1, 1), true, map[string]string{"en": "Acme"})
	testutil.SeedContact(t, db, "a", model.ContactStatusNew)
	testutil.SeedContact(t, db, "b", model.ContactStatusArchived)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.Summary{
		Projects:    2,
		Experiences: 1,
		Educations:  0,
		Contacts:    2,
		NewContacts: 1,
	}, summary)
}

func TestSummaryService_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := mock.NewMockProjectRepository(ctrl)
	experiences := mock.NewMockExperienceRepository(ctrl)
	educations := mock.NewMockEducationRepository(ctrl)
	contacts := mock.NewMockContactRepository(ctrl)
	svc := service.NewSummaryService(projects, experiences, educations, contacts)

	boom := errors.New("database is locked")
	projects.EXPECT().Count(gomock.Any()).Return(0, boom)
	experiences.EXPECT().Count(gomock.Any()).Return(1, nil).AnyTimes()
	educations.EXPECT().Count(gomock.Any()).Return(1, nil).AnyTimes()
	contacts.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()

	_, err := svc.Summary(context.Background())
	require.ErrorIs(t, err, boom)
}
