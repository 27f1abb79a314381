package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"portfolio/backend/internal/logger"
)

// MaxImageSize is the largest accepted upload in bytes.
const MaxImageSize = 5 << 20

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// ErrUploadFailed wraps errors returned by the media host.
var ErrUploadFailed = errors.New("upload failed")

// MediaStore persists uploaded files on a media host.
type MediaStore interface {
	Upload(ctx context.Context, publicID string, data io.Reader) (UploadedMedia, error)
}

type UploadedMedia struct {
	URL      string
	PublicID string
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}

type UploadService interface {
	UploadImage(ctx context.Context, upload ImageUpload) (UploadedMedia, error)
}

type uploadService struct {
	store MediaStore
	now   func() time.Time
}

// NewUploadService creates an upload service. A nil store makes every upload
// fail with ErrUnavailable.
func NewUploadService(store MediaStore) UploadService {
	return &uploadService{store: store, now: time.Now}
}

func (s *uploadService) UploadImage(ctx context.Context, upload ImageUpload) (UploadedMedia, error) {
	if s.store == nil {
		return UploadedMedia{}, ErrUnavailable
	}
	if upload.Data == nil {
		return UploadedMedia{}, invalidf("file is required")
	}
	if upload.Size > MaxImageSize {
		return UploadedMedia{}, invalidf("file exceeds 5MB limit")
	}

	data, err := io.ReadAll(io.LimitReader(upload.Data, MaxImageSize+1))
	if err != nil {
		return UploadedMedia{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return UploadedMedia{}, invalidf("file is empty")
	}
	if len(data) > MaxImageSize {
		return UploadedMedia{}, invalidf("file exceeds 5MB limit")
	}

	detected := mimetype.Detect(data)
	if !isAllowedImage(detected) {
		return UploadedMedia{}, invalidf("only jpeg, png, webp and gif images are allowed")
	}
	if !declaredTypeMatches(upload.ContentType, detected) {
		return UploadedMedia{}, invalidf("declared content type does not match file contents")
	}

	publicID := fmt.Sprintf("%d-%s", s.now().UnixMilli(), uuid.NewString())
	media, err := s.store.Upload(ctx, publicID, bytes.NewReader(data))
	if err != nil {
		logger.Warn("image upload failed", "module", "service", "action", "upload", "resource", "image", "result", "failed", "error", err)
		return UploadedMedia{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	logger.Info("image uploaded", "module", "service", "action", "upload", "resource", "image", "result", "ok", "public_id", media.PublicID, "size", len(data), "type", detected.String())
	return media, nil
}

func isAllowedImage(detected *mimetype.MIME) bool {
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

// declaredTypeMatches reports whether the client-declared content type agrees
// with the sniffed one. Missing or generic declarations are accepted.
func declaredTypeMatches(declared string, detected *mimetype.MIME) bool {
	if strings.TrimSpace(declared) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	if mediaType == "application/octet-stream" {
		return true
	}
	if mediaType == "image/jpg" || mediaType == "image/pjpeg" {
		mediaType = "image/jpeg"
	}
	return detected.Is(mediaType)
}
