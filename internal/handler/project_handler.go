package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectTranslationPayload struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createProjectRequest struct {
	ImageURL     *string                     `json:"imageUrl"`
	Technologies []string                    `json:"technologies"`
	GithubURL    *string                     `json:"githubUrl"`
	LiveURL      *string                     `json:"liveUrl"`
	Featured     bool                        `json:"featured"`
	Translations []projectTranslationPayload `json:"translations"`
}

// updateProjectRequest carries only the fields to change. Sending
// translations replaces the whole set.
type updateProjectRequest struct {
	ImageURL     nullable[string]            `json:"imageUrl" swaggertype:"string"`
	Technologies []string                    `json:"technologies"`
	GithubURL    nullable[string]            `json:"githubUrl" swaggertype:"string"`
	LiveURL      nullable[string]            `json:"liveUrl" swaggertype:"string"`
	Featured     *bool                       `json:"featured"`
	Translations []projectTranslationPayload `json:"translations"`
}

type projectResponse struct {
	ID           string   `json:"id"`
	Language     string   `json:"language"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type projectAdminResponse struct {
	ID           string                      `json:"id"`
	ImageURL     *string                     `json:"imageUrl"`
	Technologies []string                    `json:"technologies"`
	GithubURL    *string                     `json:"githubUrl"`
	LiveURL      *string                     `json:"liveUrl"`
	Featured     bool                        `json:"featured"`
	Translations []projectTranslationPayload `json:"translations"`
	CreatedAt    string                      `json:"createdAt"`
	UpdatedAt    string                      `json:"updatedAt"`
}

func (h *ProjectHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/projects", h.List)
	g.GET("/projects/featured", h.ListFeatured)
	g.GET("/projects/:id", h.Get)
}

func (h *ProjectHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/projects/:id/admin", h.GetAdmin)
	g.POST("/projects", h.Create)
	g.PATCH("/projects/:id", h.Update)
	g.DELETE("/projects/:id", h.Delete)
}

// List returns all projects in the request language.
// @Summary List projects
// @Description Get all projects, newest first, localized by Accept-Language
// @Tags projects
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} projectResponse
// @Failure 500 {object} errorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// ListFeatured returns featured projects in the request language.
// @Summary List featured projects
// @Description Get featured projects, newest first, localized by Accept-Language
// @Tags projects
// @Produce json
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {array} projectResponse
// @Failure 500 {object} errorResponse
// @Router /projects/featured [get]
func (h *ProjectHandler) ListFeatured(c echo.Context) error {
	projects, err := h.service.ListFeatured(c.Request().Context(), requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// Get returns one project in the request language.
// @Summary Get a project
// @Description Get a project by ID, localized by Accept-Language
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param Accept-Language header string false "Content language" default(en)
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	project, err := h.service.Get(c.Request().Context(), id, requestLanguage(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// GetAdmin returns a project with every translation.
// @Summary Get a project for editing
// @Description Get a project by ID with all of its translations
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projectAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id}/admin [get]
func (h *ProjectHandler) GetAdmin(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	project, err := h.service.GetWithTranslations(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectAdminResponse(project))
}

// Create creates a project together with its translations.
// @Summary Create a project
// @Description Create a project and its translations in one request
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body createProjectRequest true "Project"
// @Success 201 {object} projectAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	project, err := h.service.Create(c.Request().Context(), service.ProjectInput{
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Featured:     req.Featured,
		Translations: toProjectTranslations(req.Translations),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toProjectAdminResponse(project))
}

// Update changes a project. Sending translations replaces all of them.
// @Summary Update a project
// @Description Update project fields; a translations array replaces the whole translation set
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param project body updateProjectRequest true "Fields to change"
// @Success 200 {object} projectAdminResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	project, err := h.service.Update(c.Request().Context(), id, service.ProjectPatch{
		ImageURL:     req.ImageURL.optional(),
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL.optional(),
		LiveURL:      req.LiveURL.optional(),
		Featured:     req.Featured,
		Translations: toProjectTranslations(req.Translations),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectAdminResponse(project))
}

// Delete removes a project and its translations.
// @Summary Delete a project
// @Description Delete a project and all of its translations
// @Tags projects
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// toProjectTranslations keeps nil distinct from empty so an absent array
// leaves translations untouched.
func toProjectTranslations(payload []projectTranslationPayload) []model.ProjectTranslation {
	if payload == nil {
		return nil
	}
	translations := make([]model.ProjectTranslation, 0, len(payload))
	for _, t := range payload {
		translations = append(translations, model.ProjectTranslation{
			Language:    t.Language,
			Title:       t.Title,
			Description: t.Description,
		})
	}
	return translations
}

func toProjectResponses(projects []service.LocalizedProject) []projectResponse {
	response := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}
	return response
}

func toProjectResponse(p service.LocalizedProject) projectResponse {
	return projectResponse{
		ID:           snowflake.FormatID(p.ID),
		Language:     p.Language,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Technologies: nonNil(p.Technologies),
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Featured:     p.Featured,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}

func toProjectAdminResponse(p model.Project) projectAdminResponse {
	translations := make([]projectTranslationPayload, 0, len(p.Translations))
	for _, t := range p.Translations {
		translations = append(translations, projectTranslationPayload{
			Language:    t.Language,
			Title:       t.Title,
			Description: t.Description,
		})
	}
	return projectAdminResponse{
		ID:           snowflake.FormatID(p.ID),
		ImageURL:     p.ImageURL,
		Technologies: nonNil(p.Technologies),
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
		Featured:     p.Featured,
		Translations: translations,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
	}
}
