package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/service"
)

// Smallest PNG signature plus IHDR start; enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type memoryStore struct {
	err error
}

func (s memoryStore) Upload(_ context.Context, publicID string, data io.Reader) (service.UploadedMedia, error) {
	if s.err != nil {
		return service.UploadedMedia{}, s.err
	}
	if _, err := io.Copy(io.Discard, data); err != nil {
		return service.UploadedMedia{}, err
	}
	return service.UploadedMedia{URL: "https://cdn.example.com/portfolio/" + publicID, PublicID: "portfolio/" + publicID}, nil
}

func uploadRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "image.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	srv := newTestServer(t, serverOptions{store: memoryStore{}})

	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, uploadRequest(t, "file", pngBytes))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[map[string]string](t, rec)
	require.Contains(t, body["url"], "https://cdn.example.com/portfolio/")
	require.Contains(t, body["publicId"], "portfolio/")

	rec = httptest.NewRecorder()
	srv.e.ServeHTTP(rec, uploadRequest(t, "image", pngBytes))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "file is required", errorMessage(t, rec))

	rec = httptest.NewRecorder()
	srv.e.ServeHTTP(rec, uploadRequest(t, "file", []byte("plain text, not an image")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_ProviderFailure(t *testing.T) {
	srv := newTestServer(t, serverOptions{store: memoryStore{err: errors.New("Invalid api_key")}})

	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, uploadRequest(t, "file", pngBytes))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "upload failed: Invalid api_key", errorMessage(t, rec))
}

func TestUploadHandler_NotConfigured(t *testing.T) {
	srv := newTestServer(t, serverOptions{})

	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, uploadRequest(t, "file", pngBytes))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
