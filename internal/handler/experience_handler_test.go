package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type experienceJSON struct {
	ID        string  `json:"id"`
	Company   string  `json:"company"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Current   bool    `json:"current"`
}

func TestExperienceHandler_Dates(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/experiences", map[string]any{
		"startDate": "2021-03-01",
		"endDate":   "2022-05-31T12:00:00+02:00",
		"translations": []map[string]string{
			{"language": "en", "company": "Acme", "position": "Engineer", "description": "Built things"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[experienceJSON](t, rec)
	require.Equal(t, "2021-03-01T00:00:00Z", created.StartDate)
	require.NotNil(t, created.EndDate)
	require.Equal(t, "2022-05-31T00:00:00Z", *created.EndDate)

	rec = srv.do(t, http.MethodGet, "/api/experiences/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decode[experienceJSON](t, rec)
	require.Equal(t, created.StartDate, stored.StartDate)
	require.Equal(t, *created.EndDate, *stored.EndDate)

	// The UTC calendar day is kept, not the local one.
	rec = srv.do(t, http.MethodPost, "/api/experiences", map[string]any{
		"startDate": "2023-01-01T01:30:00+04:00",
		"translations": []map[string]string{
			{"language": "en", "company": "Globex", "position": "Engineer", "description": "d"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "2022-12-31T00:00:00Z", decode[experienceJSON](t, rec).StartDate)

	rec = srv.do(t, http.MethodPatch, "/api/experiences/"+created.ID, map[string]any{
		"endDate": nil,
		"current": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[experienceJSON](t, rec)
	require.Nil(t, updated.EndDate)
	require.True(t, updated.Current)

	rec = srv.do(t, http.MethodGet, "/api/experiences/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	current := decode[[]experienceJSON](t, rec)
	require.Len(t, current, 1)
	require.Equal(t, "Acme", current[0].Company)
}

func TestExperienceHandler_InvalidDates(t *testing.T) {
	srv := newTestServer(t, serverOptions{})
	translations := []map[string]string{
		{"language": "en", "company": "Acme", "position": "Engineer", "description": "d"},
	}

	rec := srv.do(t, http.MethodPost, "/api/experiences", map[string]any{
		"startDate":    "March 2021",
		"translations": translations,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/experiences", map[string]any{
		"translations": translations,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "startDate is required", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/experiences", map[string]any{
		"startDate":    "2021-03-01",
		"endDate":      "2020-01-01",
		"translations": translations,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "endDate must not be before startDate", errorMessage(t, rec))
}
