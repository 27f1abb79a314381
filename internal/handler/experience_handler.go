package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

type ExperienceHandler struct {
	service service.ExperienceService
}

func NewExperienceHandler(service service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

type experienceTranslationPayload struct {
	Language    string `json:"language"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

type createExperienceRequest struct {
	StartDate    string                         `json:"startDate" example:"2021-03-01"`
	EndDate      *string                        `json:"endDate"`
	Current      bool                           `json:"current"`
	Technologies []string                       `json:"technologies"`
	Translations []experienceTranslationPayload `json:"translations"`
}

type updateExperienceRequest struct {
	StartDate    *string                        `json:"startDate"`
	EndDate      nullable[string]               `json:"endDate" swaggertype:"string"`
	Current      *bool                          `json:"current"`
	Technologies []string                       `json:"technologies"`
	Translations []experienceTranslationPayload `json:"translations"`
}

type experienceResponse struct {
	ID           string   `json:"id"`
	Language     string   `json:"language"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Current      bool     `json:"current"`
	Technologies []string `json:"technologies"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type experienceAdminResponse struct {
	ID           string                         `json:"id"`
	StartDate    string                         `json:"startDate"`
	EndDate      *string                        `json:"endDate"`
	Current      bool                           `json:"current"`
	Technologies []string                       `json:"technologies"`
	Translations []experienceTranslationPayload `json:"translations"`
	CreatedAt    string                         `json:"createdAt"`
	UpdatedAt    string                         `json:"updatedAt"`
}

func (h *ExperienceHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/experiences", h.List)
	g.GET("/experiences/current", h.ListCurrent)
	g.GET("/experiences/:id", h.Get)
}

func (h *ExperienceHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/experiences/:id/admin", h.GetAdmin)
	g.POST("/experiences", h.Create)
	g.PATCH("/experiences/:id", h.Update)
	g.DELETE("/experiences/:id", h.Delete)
}

// List returns all experiences in the request language.
// @Summary List experiences
// @Description Get all work experiences, most recent start first, localized by Accept-Language
// @Tags experiences
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} experienceResponse
// @Failure 500 {object} errorResponse
// @Router /experiences [get]
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.service.List(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toExperienceResponses(experiences))
}

// ListCurrent returns ongoing experiences in the request language.
// @Summary List current experiences
// @Description Get experiences flagged as current, localized by Accept-Language
// @Tags experiences
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} experienceResponse
// @Failure 500 {object} errorResponse
// @Router /experiences/current [get]
func (h *ExperienceHandler) ListCurrent(c echo.Context) error {
	experiences, err := h.service.ListCurrent(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toExperienceResponses(experiences))
}

// Get returns one experience in the request language.
// @Summary Get an experience
// @Description Get an experience by ID, localized by Accept-Language
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {object} experienceResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid experience ID"})
	}
	experience, err := h.service.Get(c.Request().Context(), id, requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toExperienceResponse(experience))
}

// GetAdmin returns an experience with every translation.
// @Summary Get an experience for editing
// @Description Get an experience by ID with all of its translations
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Success 200 {object} experienceAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /experiences/{id}/admin [get]
func (h *ExperienceHandler) GetAdmin(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid experience ID"})
	}
	experience, err := h.service.GetWithTranslations(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toExperienceAdminResponse(experience))
}

// Create creates an experience together with its translations.
// @Summary Create an experience
// @Description Create an experience and its translations in one request
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param experience body createExperienceRequest true "Experience"
// @Success 201 {object} experienceAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /experiences [post]
func (h *ExperienceHandler) Create(c echo.Context) error {
	var req createExperienceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	input := service.ExperienceInput{
		Current:      req.Current,
		Technologies: req.Technologies,
		Translations: toExperienceTranslations(req.Translations),
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		input.StartDate = start
	}
	end, err := parseDatePtr(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	input.EndDate = end

	experience, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toExperienceAdminResponse(experience))
}

// Update changes an experience. Sending translations replaces all of them.
// @Summary Update an experience
// @Description Update experience fields; a translations array replaces the whole translation set
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param experience body updateExperienceRequest true "Fields to change"
// @Success 200 {object} experienceAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /experiences/{id} [patch]
func (h *ExperienceHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid experience ID"})
	}
	var req updateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	patch := service.ExperiencePatch{
		Current:      req.Current,
		Technologies: req.Technologies,
		Translations: toExperienceTranslations(req.Translations),
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		patch.StartDate = &start
	}
	if patch.EndDate, err = optionalDate(req.EndDate); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	experience, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toExperienceAdminResponse(experience))
}

// Delete removes an experience and its translations.
// @Summary Delete an experience
// @Description Delete an experience and all of its translations
// @Tags experiences
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid experience ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toExperienceTranslations(payload []experienceTranslationPayload) []model.ExperienceTranslation {
	if payload == nil {
		return nil
	}
	translations := make([]model.ExperienceTranslation, 0, len(payload))
	for _, t := range payload {
		translations = append(translations, model.ExperienceTranslation{
			Language:    t.Language,
			Company:     t.Company,
			Position:    t.Position,
			Description: t.Description,
		})
	}
	return translations
}

func toExperienceResponses(experiences []service.LocalizedExperience) []experienceResponse {
	response := make([]experienceResponse, 0, len(experiences))
	for _, e := range experiences {
		response = append(response, toExperienceResponse(e))
	}
	return response
}

func toExperienceResponse(e service.LocalizedExperience) experienceResponse {
	return experienceResponse{
		ID:           snowflake.FormatID(e.ID),
		Language:     e.Language,
		Company:      e.Company,
		Position:     e.Position,
		Description:  e.Description,
		StartDate:    formatTime(e.StartDate),
		EndDate:      formatTimePtr(e.EndDate),
		Current:      e.Current,
		Technologies: nonNil(e.Technologies),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}

func toExperienceAdminResponse(e model.Experience) experienceAdminResponse {
	translations := make([]experienceTranslationPayload, 0, len(e.Translations))
	for _, t := range e.Translations {
		translations = append(translations, experienceTranslationPayload{
			Language:    t.Language,
			Company:     t.Company,
			Position:    t.Position,
			Description: t.Description,
		})
	}
	return experienceAdminResponse{
		ID:           snowflake.FormatID(e.ID),
		StartDate:    formatTime(e.StartDate),
		EndDate:      formatTimePtr(e.EndDate),
		Current:      e.Current,
		Technologies: nonNil(e.Technologies),
		Translations: translations,
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}
