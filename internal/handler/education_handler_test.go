package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type educationJSON struct {
	ID          string  `json:"id"`
	Institution string  `json:"institution"`
	Description *string `json:"description"`
	Grade       *string `json:"grade"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func TestEducationHandler_CRUD(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/education", map[string]any{
		"startDate": "2016-09-01",
		"endDate":   "2020-06-30",
		"grade":     "4.0",
		"translations": []map[string]any{
			{"language": "en", "institution": "State University", "degree": "BSc", "field": "CS", "description": "Honors"},
			{"language": "ru", "institution": "Госуниверситет", "degree": "Бакалавр", "field": "Информатика"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[educationJSON](t, rec)

	rec = srv.do(t, http.MethodGet, "/api/education/"+created.ID, nil, "Accept-Language", "ru")
	require.Equal(t, http.StatusOK, rec.Code)
	ru := decode[educationJSON](t, rec)
	require.Equal(t, "Госуниверситет", ru.Institution)
	require.Nil(t, ru.Description)
	require.Equal(t, "4.0", *ru.Grade)

	rec = srv.do(t, http.MethodPatch, "/api/education/"+created.ID, map[string]any{"grade": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Nil(t, decode[educationJSON](t, rec).Grade)

	rec = srv.do(t, http.MethodGet, "/api/education", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]educationJSON](t, rec), 1)

	rec = srv.do(t, http.MethodDelete, "/api/education/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/education/"+created.ID+"/admin", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
