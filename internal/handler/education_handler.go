package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

type EducationHandler struct {
	service service.EducationService
}

func NewEducationHandler(service service.EducationService) *EducationHandler {
	return &EducationHandler{service: service}
}

type educationTranslationPayload struct {
	Language    string  `json:"language"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	Description *string `json:"description"`
}

type createEducationRequest struct {
	StartDate    string                        `json:"startDate" example:"2016-09-01"`
	EndDate      *string                       `json:"endDate"`
	Current      bool                          `json:"current"`
	Grade        *string                       `json:"grade"`
	Website      *string                       `json:"website"`
	Translations []educationTranslationPayload `json:"translations"`
}

type updateEducationRequest struct {
	StartDate    *string                       `json:"startDate"`
	EndDate      nullable[string]              `json:"endDate" swaggertype:"string"`
	Current      *bool                         `json:"current"`
	Grade        nullable[string]              `json:"grade" swaggertype:"string"`
	Website      nullable[string]              `json:"website" swaggertype:"string"`
	Translations []educationTranslationPayload `json:"translations"`
}

type educationResponse struct {
	ID          string  `json:"id"`
	Language    string  `json:"language"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	Description *string `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     bool    `json:"current"`
	Grade       *string `json:"grade"`
	Website     *string `json:"website"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type educationAdminResponse struct {
	ID           string                        `json:"id"`
	StartDate    string                        `json:"startDate"`
	EndDate      *string                       `json:"endDate"`
	Current      bool                          `json:"current"`
	Grade        *string                       `json:"grade"`
	Website      *string                       `json:"website"`
	Translations []educationTranslationPayload `json:"translations"`
	CreatedAt    string                        `json:"createdAt"`
	UpdatedAt    string                        `json:"updatedAt"`
}

func (h *EducationHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/education", h.List)
	g.GET("/education/current", h.ListCurrent)
	g.GET("/education/:id", h.Get)
}

func (h *EducationHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/education/:id/admin", h.GetAdmin)
	g.POST("/education", h.Create)
	g.PATCH("/education/:id", h.Update)
	g.DELETE("/education/:id", h.Delete)
}

// List returns all education records in the request language.
// @Summary List education
// @Description Get all education records, most recent start first, localized by Accept-Language
// @Tags education
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} educationResponse
// @Failure 500 {object} errorResponse
// @Router /education [get]
func (h *EducationHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEducationResponses(records))
}

// ListCurrent returns ongoing education records in the request language.
// @Summary List current education
// @Description Get education records flagged as current, localized by Accept-Language
// @Tags education
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} educationResponse
// @Failure 500 {object} errorResponse
// @Router /education/current [get]
func (h *EducationHandler) ListCurrent(c echo.Context) error {
	records, err := h.service.ListCurrent(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEducationResponses(records))
}

// Get returns one education record in the request language.
// @Summary Get an education record
// @Description Get an education record by ID, localized by Accept-Language
// @Tags education
// @Produce json
// @Param id path string true "Education ID"
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {object} educationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /education/{id} [get]
func (h *EducationHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid education ID"})
	}
	record, err := h.service.Get(c.Request().Context(), id, requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEducationResponse(record))
}

// GetAdmin returns an education record with every translation.
// @Summary Get an education record for editing
// @Description Get an education record by ID with all of its translations
// @Tags education
// @Produce json
// @Security BearerAuth
// @Param id path string true "Education ID"
// @Success 200 {object} educationAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /education/{id}/admin [get]
func (h *EducationHandler) GetAdmin(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid education ID"})
	}
	record, err := h.service.GetWithTranslations(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEducationAdminResponse(record))
}

// Create creates an education record together with its translations.
// @Summary Create an education record
// @Description Create an education record and its translations in one request
// @Tags education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param education body createEducationRequest true "Education"
// @Success 201 {object} educationAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /education [post]
func (h *EducationHandler) Create(c echo.Context) error {
	var req createEducationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	input := service.EducationInput{
		Current:      req.Current,
		Grade:        req.Grade,
		Website:      req.Website,
		Translations: toEducationTranslations(req.Translations),
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

	record, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toEducationAdminResponse(record))
}

// Update changes an education record. Sending translations replaces all of them.
// @Summary Update an education record
// @Description Update education fields; a translations array replaces the whole translation set
// @Tags education
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Education ID"
// @Param education body updateEducationRequest true "Fields to change"
// @Success 200 {object} educationAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /education/{id} [patch]
func (h *EducationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid education ID"})
	}
	var req updateEducationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	patch := service.EducationPatch{
		Current:      req.Current,
		Grade:        req.Grade.optional(),
		Website:      req.Website.optional(),
		Translations: toEducationTranslations(req.Translations),
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

	record, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEducationAdminResponse(record))
}

// Delete removes an education record and its translations.
// @Summary Delete an education record
// @Description Delete an education record and all of its translations
// @Tags education
// @Security BearerAuth
// @Param id path string true "Education ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /education/{id} [delete]
func (h *EducationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid education ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toEducationTranslations(payload []educationTranslationPayload) []model.EducationTranslation {
	if payload == nil {
		return nil
	}
	translations := make([]model.EducationTranslation, 0, len(payload))
	for _, t := range payload {
		translations = append(translations, model.EducationTranslation{
			Language:    t.Language,
			Institution: t.Institution,
			Degree:      t.Degree,
			Field:       t.Field,
			Description: t.Description,
		})
	}
	return translations
}

func toEducationResponses(records []service.LocalizedEducation) []educationResponse {
	response := make([]educationResponse, 0, len(records))
	for _, r := range records {
		response = append(response, toEducationResponse(r))
	}
	return response
}

func toEducationResponse(e service.LocalizedEducation) educationResponse {
	return educationResponse{
		ID:          snowflake.FormatID(e.ID),
		Language:    e.Language,
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		Description: e.Description,
		StartDate:   formatTime(e.StartDate),
		EndDate:     formatTimePtr(e.EndDate),
		Current:     e.Current,
		Grade:       e.Grade,
		Website:     e.Website,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func toEducationAdminResponse(e model.Education) educationAdminResponse {
	translations := make([]educationTranslationPayload, 0, len(e.Translations))
	for _, t := range e.Translations {
		translations = append(translations, educationTranslationPayload{
			Language:    t.Language,
			Institution: t.Institution,
			Degree:      t.Degree,
			Field:       t.Field,
			Description: t.Description,
		})
	}
	return educationAdminResponse{
		ID:           snowflake.FormatID(e.ID),
		StartDate:    formatTime(e.StartDate),
		EndDate:      formatTimePtr(e.EndDate),
		Current:      e.Current,
		Grade:        e.Grade,
		Website:      e.Website,
		Translations: translations,
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
}
