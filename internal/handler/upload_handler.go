package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/service"
)

type UploadHandler struct {
	service service.UploadService
}

func NewUploadHandler(service service.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload/image", h.UploadImage)
}

// UploadImage stores an image on the media host.
// @Summary Upload an image
// @Description Upload a jpeg, png, webp or gif image of at most 5MB
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid multipart request"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "failed to read file"})
	}
	defer src.Close()

	media, err := h.service.UploadImage(c.Request().Context(), service.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Data:        src,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, uploadResponse{URL: media.URL, PublicID: media.PublicID})
}
