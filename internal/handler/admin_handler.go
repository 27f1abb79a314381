package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/service"
)

type AdminHandler struct {
	translations service.TranslationDraftService
	summary      service.SummaryService
}

func NewAdminHandler(translations service.TranslationDraftService, summary service.SummaryService) *AdminHandler {
	return &AdminHandler{translations: translations, summary: summary}
}

type translateRequest struct {
	SourceLanguage string            `json:"sourceLanguage" example:"en"`
	TargetLanguage string            `json:"targetLanguage" example:"az"`
	Fields         map[string]string `json:"fields"`
}

type translateResponse struct {
	Fields map[string]string `json:"fields"`
}

type summaryResponse struct {
	Projects    int `json:"projects"`
	Experiences int `json:"experiences"`
	Education   int `json:"education"`
	Contacts    int `json:"contacts"`
	NewContacts int `json:"newContacts"`
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/admin/translate", h.Translate)
	g.GET("/admin/summary", h.Summary)
}

// Translate drafts a translation of content fields.
// @Summary Draft a translation
// @Description Machine-translate text fields for review. Nothing is saved.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body translateRequest true "Fields to translate"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /admin/translate [post]
func (h *AdminHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	fields, err := h.translations.Draft(c.Request().Context(), req.SourceLanguage, req.TargetLanguage, req.Fields)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, translateResponse{Fields: fields})
}

// Summary returns dashboard counts.
// @Summary Dashboard summary
// @Description Count projects, experiences, education records and contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} summaryResponse
// @Failure 401 {object} errorResponse
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c echo.Context) error {
	summary, err := h.summary.Summary(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summaryResponse{
		Projects:    summary.Projects,
		Experiences: summary.Experiences,
		Education:   summary.Educations,
		Contacts:    summary.Contacts,
		NewContacts: summary.NewContacts,
	})
}
