package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/service"
)

// Minimal valid file headers are enough for content sniffing.
var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	webpHeader = []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00")
	tiffHeader = []byte("II*\x00\x08\x00\x00\x00\x00\x00\x00\x00")
)

type fakeMediaStore struct {
	publicIDs []string
	received  [][]byte
	err       error
}

func (s *fakeMediaStore) Upload(_ context.Context, publicID string, data io.Reader) (service.UploadedMedia, error) {
	if s.err != nil {
		return service.UploadedMedia{}, s.err
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return service.UploadedMedia{}, err
	}
	s.publicIDs = append(s.publicIDs, publicID)
	s.received = append(s.received, body)
	return service.UploadedMedia{
		URL:      "https://res.cloudinary.com/demo/image/upload/portfolio/" + publicID,
		PublicID: "portfolio/" + publicID,
	}, nil
}

func TestUploadService_UploadImage_Success(t *testing.T) {
	store := &fakeMediaStore{}
	svc := service.NewUploadService(store)

	media, err := svc.UploadImage(context.Background(), service.ImageUpload{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Size:        int64(len(pngHeader)),
		Data:        bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	require.Len(t, store.publicIDs, 1)
	require.Regexp(t, regexp.MustCompile(`^\d{13}-[0-9a-f-]{36}$`), store.publicIDs[0])
	require.Equal(t, pngHeader, store.received[0])
	require.Equal(t, "portfolio/"+store.publicIDs[0], media.PublicID)
}

func TestUploadService_UploadImage_AllowedTypes(t *testing.T) {
	cases := map[string][]byte{
		"image/jpeg": jpegHeader,
		"image/png":  pngHeader,
		"image/webp": webpHeader,
		"image/gif":  gifHeader,
	}
	for contentType, data := range cases {
		t.Run(contentType, func(t *testing.T) {
			store := &fakeMediaStore{}
			_, err := service.NewUploadService(store).UploadImage(context.Background(), service.ImageUpload{
				ContentType: contentType,
				Data:        bytes.NewReader(data),
			})
			require.NoError(t, err)
			require.Len(t, store.publicIDs, 1)
		})
	}

	_, err := service.NewUploadService(&fakeMediaStore{}).UploadImage(context.Background(), service.ImageUpload{
		ContentType: "image/jpg",
		Data:        bytes.NewReader(jpegHeader),
	})
	require.NoError(t, err)
}

func TestUploadService_UploadImage_Rejects(t *testing.T) {
	oversized := make([]byte, service.MaxImageSize+1)
	copy(oversized, pngHeader)

	cases := map[string]service.ImageUpload{
		"no data":          {Filename: "a.png"},
		"empty":            {Filename: "a.png", Data: bytes.NewReader(nil)},
		"declared too big": {Filename: "a.png", Size: service.MaxImageSize + 1, Data: bytes.NewReader(pngHeader)},
		"actually too big": {Filename: "a.png", Data: bytes.NewReader(oversized)},
		"not an image":     {Filename: "a.png", ContentType: "image/png", Data: bytes.NewReader([]byte("%PDF-1.7 fake"))},
		"type mismatch":    {Filename: "a.gif", ContentType: "image/png", Data: bytes.NewReader(gifHeader)},
		"tiff":             {Filename: "a.tiff", Data: bytes.NewReader(tiffHeader)},
	}
	for name, upload := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeMediaStore{}
			_, err := service.NewUploadService(store).UploadImage(context.Background(), upload)
			require.ErrorIs(t, err, service.ErrInvalid)
			require.Empty(t, store.publicIDs)
		})
	}
}

func TestUploadService_UploadImage_GenericDeclaredType(t *testing.T) {
	store := &fakeMediaStore{}
	_, err := service.NewUploadService(store).UploadImage(context.Background(), service.ImageUpload{
		ContentType: "application/octet-stream",
		Data:        bytes.NewReader(gifHeader),
	})
	require.NoError(t, err)
}

func TestUploadService_UploadImage_StoreFailure(t *testing.T) {
	store := &fakeMediaStore{err: errors.New("Invalid image file")}
	_, err := service.NewUploadService(store).UploadImage(context.Background(), service.ImageUpload{
		ContentType: "image/png",
		Data:        bytes.NewReader(pngHeader),
	})
	require.ErrorIs(t, err, service.ErrUploadFailed)
	require.Contains(t, err.Error(), "Invalid image file")
}

func TestUploadService_NotConfigured(t *testing.T) {
	_, err := service.NewUploadService(nil).UploadImage(context.Background(), service.ImageUpload{
		Data: bytes.NewReader(pngHeader),
	})
	require.ErrorIs(t, err, service.ErrUnavailable)
}
