package service_test

import (
	"context"
	"errors"
	"testing"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/mock"
	"portfolio/backend/internal/repository/testutil"
	"portfolio/backend/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func newProjectService(t *testing.T, policy service.TranslationPolicy) service.ProjectService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return service.NewProjectService(repository.NewProjectRepository(db), policy)
}

func threeLanguageProject() service.ProjectInput {
	return service.ProjectInput{
		Technologies: []string{"Go", " ", "SQLite"},
		GithubURL:    stringPtr("https://github.com/example/portfolio"),
		Featured:     true,
		Translations: []model.ProjectTranslation{
			{Language: "en", Title: "Portfolio", Description: "Personal site"},
			{Language: "RU", Title: "Портфолио", Description: "Личный сайт"},
			{Language: "az", Title: "Portfel", Description: "Şəxsi sayt"},
		},
	}
}

func TestProjectService_RoundTripEachLanguage(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	created, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "SQLite"}, created.Technologies)

	want := map[string]string{"en": "Portfolio", "ru": "Портфолио", "az": "Portfel"}
	for lang, title := range want {
		project, err := svc.Get(ctx, created.ID, lang)
		require.NoError(t, err, lang)
		require.Equal(t, lang, project.Language)
		require.Equal(t, title, project.Title)
		require.True(t, project.Featured)

		list, err := svc.List(ctx, lang)
		require.NoError(t, err, lang)
		require.Len(t, list, 1)
		require.Equal(t, title, list[0].Title)
	}

	full, err := svc.GetWithTranslations(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, full.Translations, 3)
}

func TestProjectService_StrictMissingTranslationFailsListing(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	_, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)
	englishOnly, err := svc.Create(ctx, service.ProjectInput{
		Translations: []model.ProjectTranslation{{Language: "en", Title: "Only English", Description: "d"}},
	})
	require.NoError(t, err)

	_, err = svc.List(ctx, "ru")
	require.ErrorIs(t, err, service.ErrMissingTranslation)

	var missing *service.MissingTranslationError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, englishOnly.ID, missing.ID)
	require.Equal(t, "ru", missing.Language)

	_, err = svc.Get(ctx, englishOnly.ID, "az")
	require.ErrorIs(t, err, service.ErrMissingTranslation)

	// An unsupported language has no rows at all.
	_, err = svc.List(ctx, "de")
	require.ErrorIs(t, err, service.ErrMissingTranslation)
}

func TestProjectService_UpdateReplacesTranslationSet(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	created, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.ProjectPatch{
		Featured: boolPtr(false),
		Translations: []model.ProjectTranslation{
			{Language: "en", Title: "Portfolio v2", Description: "Rewritten"},
			{Language: "az", Title: "Portfel v2", Description: "Yenidən yazıldı"},
		},
	})
	require.NoError(t, err)
	require.False(t, updated.Featured)
	require.Len(t, updated.Translations, 2)

	en, err := svc.Get(ctx, created.ID, "en")
	require.NoError(t, err)
	require.Equal(t, "Portfolio v2", en.Title)

	_, err = svc.Get(ctx, created.ID, "ru")
	require.ErrorIs(t, err, service.ErrMissingTranslation)
	_, err = svc.List(ctx, "ru")
	require.ErrorIs(t, err, service.ErrMissingTranslation)
}

func TestProjectService_UpdateWithoutTranslationsKeepsSet(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	created, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.ProjectPatch{
		LiveURL:   service.Optional[string]{Set: true, Value: stringPtr("https://example.com")},
		GithubURL: service.Optional[string]{Set: true},
	})
	require.NoError(t, err)
	require.Equal(t, "https://example.com", *updated.LiveURL)
	require.Nil(t, updated.GithubURL)
	require.Len(t, updated.Translations, 3)
}

func TestProjectService_FallbackPolicy(t *testing.T) {
	svc := newProjectService(t, service.PolicyFallback)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.ProjectInput{
		Translations: []model.ProjectTranslation{
			{Language: "en", Title: "English", Description: "d"},
			{Language: "ru", Title: "Русский", Description: "d"},
		},
	})
	require.NoError(t, err)

	az, err := svc.Get(ctx, created.ID, "az")
	require.NoError(t, err)
	require.Equal(t, "en", az.Language)
	require.Equal(t, "English", az.Title)

	ru, err := svc.Get(ctx, created.ID, "ru")
	require.NoError(t, err)
	require.Equal(t, "Русский", ru.Title)
}

func TestProjectService_OmitPolicy(t *testing.T) {
	svc := newProjectService(t, service.PolicyOmit)
	ctx := context.Background()

	full, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)
	partial, err := svc.Create(ctx, service.ProjectInput{
		Translations: []model.ProjectTranslation{{Language: "en", Title: "Partial", Description: "d"}},
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, "az")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, full.ID, list[0].ID)

	_, err = svc.Get(ctx, partial.ID, "az")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestProjectService_ListFeatured(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	featured, err := svc.Create(ctx, threeLanguageProject())
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.ProjectInput{
		Translations: []model.ProjectTranslation{{Language: "en", Title: "Side", Description: "d"}},
	})
	require.NoError(t, err)

	list, err := svc.ListFeatured(ctx, "az")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, featured.ID, list[0].ID)
}

func TestProjectService_Validation(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	cases := map[string]service.ProjectInput{
		"no translations": {},
		"duplicate language": {Translations: []model.ProjectTranslation{
			{Language: "en", Title: "A", Description: "a"},
			{Language: "EN", Title: "B", Description: "b"},
		}},
		"empty language": {Translations: []model.ProjectTranslation{{Title: "A", Description: "a"}}},
		"empty title":    {Translations: []model.ProjectTranslation{{Language: "en", Title: " ", Description: "a"}}},
		"bad url": {
			ImageURL:     stringPtr("ftp://example.com/a.png"),
			Translations: []model.ProjectTranslation{{Language: "en", Title: "A", Description: "a"}},
		},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, input)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestProjectService_NotFound(t *testing.T) {
	svc := newProjectService(t, service.PolicyStrict)
	ctx := context.Background()

	_, err := svc.Get(ctx, 1, "en")
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.GetWithTranslations(ctx, 1)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.Update(ctx, 1, service.ProjectPatch{})
	require.ErrorIs(t, err, service.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 1), service.ErrNotFound)
}

func TestProjectService_List_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjects := mock.NewMockProjectRepository(ctrl)
	svc := service.NewProjectService(mockProjects, service.PolicyFallback)
	ctx := context.Background()

	repoErr := errors.New("disk I/O error")
	mockProjects.EXPECT().
		List(ctx, repository.ProjectFilter{Languages: []string{"ru", "en"}}).
		Return(nil, repoErr)

	_, err := svc.List(ctx, "ru")
	require.ErrorIs(t, err, repoErr)
}

func TestParseTranslationPolicy(t *testing.T) {
	policy, err := service.ParseTranslationPolicy("")
	require.NoError(t, err)
	require.Equal(t, service.PolicyStrict, policy)

	policy, err = service.ParseTranslationPolicy(" Fallback ")
	require.NoError(t, err)
	require.Equal(t, service.PolicyFallback, policy)

	_, err = service.ParseTranslationPolicy("lenient")
	require.Error(t, err)
}
