package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/handler"
	"portfolio/backend/internal/repository"
	"portfolio/backend/internal/repository/testutil"
	"portfolio/backend/internal/service"
)

type testServer struct {
	e    *echo.Echo
	auth service.AuthService
}

type serverOptions struct {
	store    service.MediaStore
	provider fakeProviderFunc
}

// newTestServer mounts every handler on one group without authentication so
// handler behavior can be tested on its own.
func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)

	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)
	experiences := repository.NewExperienceRepository(db)
	educations := repository.NewEducationRepository(db)
	contacts := repository.NewContactRepository(db)

	authService := service.NewAuthService(users, []byte("handler-test-secret"), time.Hour)
	var drafts service.TranslationDraftService
	if opts.provider != nil {
		drafts = service.NewTranslationDraftService(opts.provider, nil)
	} else {
		drafts = service.NewTranslationDraftService(nil, nil)
	}

	e := echo.New()
	g := e.Group("/api")
	authHandler := handler.NewAuthHandler(authService)
	authHandler.RegisterPublicRoutes(g)
	authHandler.RegisterProtectedRoutes(g)

	projectHandler := handler.NewProjectHandler(service.NewProjectService(projects, service.PolicyStrict))
	projectHandler.RegisterPublicRoutes(g)
	projectHandler.RegisterProtectedRoutes(g)

	experienceHandler := handler.NewExperienceHandler(service.NewExperienceService(experiences, service.PolicyStrict))
	experienceHandler.RegisterPublicRoutes(g)
	experienceHandler.RegisterProtectedRoutes(g)

	educationHandler := handler.NewEducationHandler(service.NewEducationService(educations, service.PolicyStrict))
	educationHandler.RegisterPublicRoutes(g)
	educationHandler.RegisterProtectedRoutes(g)

	contactHandler := handler.NewContactHandler(service.NewContactService(contacts, nil))
	contactHandler.RegisterPublicRoutes(g)
	contactHandler.RegisterProtectedRoutes(g)

	handler.NewUploadHandler(service.NewUploadService(opts.store)).RegisterRoutes(g)
	handler.NewAdminHandler(drafts, service.NewSummaryService(projects, experiences, educations, contacts)).RegisterRoutes(g)

	return &testServer{e: e, auth: authService}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

type fakeProviderFunc func(ctx context.Context, systemPrompt, content string) (string, error)

func (f fakeProviderFunc) Name() string { return "fake" }

func (f fakeProviderFunc) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	return f(ctx, systemPrompt, content)
}

func TestAuthHandler_Login(t *testing.T) {
	srv := newTestServer(t, serverOptions{})
	require.NoError(t, srv.auth.EnsureOperator(context.Background(), "admin@example.com", "s3cret"))

	rec := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	require.NotEmpty(t, body["access_token"])
	user := body["user"].(map[string]any)
	require.Equal(t, "admin@example.com", user["email"])
	require.NotEmpty(t, user["id"])

	operator, err := srv.auth.ValidateToken(body["access_token"].(string))
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", operator.Email)

	rec = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid credentials", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "nobody@example.com", "password": "s3cret"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid credentials", errorMessage(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@example.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "email and password are required", errorMessage(t, rec))
}

func TestAuthHandler_MeWithoutOperator(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminHandler_Summary(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/contacts", map[string]string{"name": "Ann", "email": "ann@example.com", "message": "Hi"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/admin/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"projects":0,"experiences":0,"education":0,"contacts":1,"newContacts":1}`, rec.Body.String())
}

func TestAdminHandler_Translate(t *testing.T) {
	srv := newTestServer(t, serverOptions{
		provider: func(_ context.Context, _, content string) (string, error) {
			return "tərcümə", nil
		},
	})

	rec := srv.do(t, http.MethodPost, "/api/admin/translate", map[string]any{
		"sourceLanguage": "en",
		"targetLanguage": "az",
		"fields":         map[string]string{"title": "Translation"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{"fields":{"title":"tərcümə"}}`, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/api/admin/translate", map[string]any{
		"sourceLanguage": "en",
		"targetLanguage": "en",
		"fields":         map[string]string{"title": "Translation"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_TranslateNotConfigured(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := srv.do(t, http.MethodPost, "/api/admin/translate", map[string]any{
		"sourceLanguage": "en",
		"targetLanguage": "ru",
		"fields":         map[string]string{"title": "x"},
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminHandler_TranslateUnsupportedLanguage(t *testing.T) {
	srv := newTestServer(t, serverOptions{
		provider: func(context.Context, string, string) (string, error) { return "x", nil },
	})

	rec := srv.do(t, http.MethodPost, "/api/admin/translate", map[string]any{
		"sourceLanguage": "en",
		"targetLanguage": "fr",
		"fields":         map[string]string{"title": "Translation"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "languages must be one of en, ru, az", errorMessage(t, rec))
}
