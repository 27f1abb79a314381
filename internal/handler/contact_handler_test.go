package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type contactJSON struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
}

func TestContactHandler_Lifecycle(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/contacts", map[string]any{
		"name":    "Ann",
		"email":   "ann@example.com",
		"subject": "Hello",
		"message": "<script>alert(1)</script>Nice work",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[contactJSON](t, rec)
	require.Equal(t, "new", created.Status)
	require.Equal(t, "Nice work", created.Message)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+created.ID+"/status", map[string]string{"status": "replied"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "replied", decode[contactJSON](t, rec).Status)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+created.ID+"/status", map[string]string{"status": "spam"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPatch, "/api/contacts/"+created.ID, map[string]any{"subject": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Nil(t, decode[contactJSON](t, rec).Subject)

	rec = srv.do(t, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]contactJSON](t, rec), 1)

	rec = srv.do(t, http.MethodDelete, "/api/contacts/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/contacts/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactHandler_Validation(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/contacts", map[string]string{"name": "Ann", "email": "nope", "message": "Hi"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/contacts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}
