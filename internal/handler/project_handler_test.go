package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type projectJSON struct {
	ID           string   `json:"id"`
	Language     string   `json:"language"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Translations []struct {
		Language string `json:"language"`
		Title    string `json:"title"`
	} `json:"translations"`
}

func createProject(t *testing.T, srv *testServer, body map[string]any) projectJSON {
	t.Helper()
	rec := srv.do(t, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[projectJSON](t, rec)
}

func TestProjectHandler_LocalizedRoundTrip(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	created := createProject(t, srv, map[string]any{
		"imageUrl":     "https://cdn.example.com/p.png",
		"technologies": []string{"Go", "SQLite"},
		"featured":     true,
		"translations": []map[string]string{
			{"language": "en", "title": "Portfolio", "description": "Personal site"},
			{"language": "ru", "title": "Портфолио", "description": "Личный сайт"},
			{"language": "az", "title": "Portfolio AZ", "description": "Şəxsi sayt"},
		},
	})
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Translations, 3)

	cases := map[string]string{
		"":               "Portfolio",
		"ru-RU,en;q=0.8": "Портфолио",
		"az":             "Portfolio AZ",
	}
	for header, title := range cases {
		var headers []string
		if header != "" {
			headers = []string{"Accept-Language", header}
		}
		rec := srv.do(t, http.MethodGet, "/api/projects/"+created.ID, nil, headers...)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		project := decode[projectJSON](t, rec)
		require.Equal(t, title, project.Title)
		require.Equal(t, []string{"Go", "SQLite"}, project.Technologies)
	}

	rec := srv.do(t, http.MethodGet, "/api/projects/featured", nil, "Accept-Language", "ru")
	require.Equal(t, http.StatusOK, rec.Code)
	featured := decode[[]projectJSON](t, rec)
	require.Len(t, featured, 1)
	require.Equal(t, "ru", featured[0].Language)
}

func TestProjectHandler_MissingTranslationIsOpaque(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	createProject(t, srv, map[string]any{
		"translations": []map[string]string{{"language": "en", "title": "Only English", "description": "d"}},
	})

	rec := srv.do(t, http.MethodGet, "/api/projects", nil, "Accept-Language", "az")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal error", errorMessage(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/projects", nil, "Accept-Language", "en")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]projectJSON](t, rec), 1)
}

func TestProjectHandler_UpdateReplacesTranslations(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	created := createProject(t, srv, map[string]any{
		"imageUrl": "https://cdn.example.com/p.png",
		"translations": []map[string]string{
			{"language": "en", "title": "Old", "description": "d"},
			{"language": "ru", "title": "Старый", "description": "d"},
		},
	})

	rec := srv.do(t, http.MethodPatch, "/api/projects/"+created.ID, map[string]any{
		"imageUrl": nil,
		"translations": []map[string]string{
			{"language": "en", "title": "New", "description": "d"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[projectJSON](t, rec)
	require.Nil(t, updated.ImageURL)
	require.Len(t, updated.Translations, 1)

	rec = srv.do(t, http.MethodGet, "/api/projects/"+created.ID, nil, "Accept-Language", "ru")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// Absent fields are left alone.
	rec = srv.do(t, http.MethodPatch, "/api/projects/"+created.ID, map[string]any{"featured": true})
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decode[projectJSON](t, rec)
	require.True(t, updated.Featured)
	require.Len(t, updated.Translations, 1)

	rec = srv.do(t, http.MethodGet, "/api/projects/"+created.ID+"/admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	admin := decode[projectJSON](t, rec)
	require.Equal(t, "New", admin.Translations[0].Title)
}

func TestProjectHandler_Validation(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/projects", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "at least one translation is required", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/projects", map[string]any{
		"translations": []map[string]string{{"language": "en", "description": "d"}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "title is required", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/projects", map[string]any{
		"translations": []map[string]string{
			{"language": "en", "title": "a", "description": "d"},
			{"language": "EN", "title": "b", "description": "d"},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/projects/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectHandler_Delete(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	created := createProject(t, srv, map[string]any{
		"translations": []map[string]string{{"language": "en", "title": "t", "description": "d"}},
	})

	rec := srv.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/projects/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
