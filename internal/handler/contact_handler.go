package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type createContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

type updateContactRequest struct {
	Name    *string          `json:"name"`
	Email   *string          `json:"email"`
	Subject nullable[string] `json:"subject" swaggertype:"string"`
	Message *string          `json:"message"`
}

type updateContactStatusRequest struct {
	Status string `json:"status" enums:"new,read,replied,archived"`
}

type contactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Subject   *string `json:"subject"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// RegisterPublicRoutes registers the visitor form endpoint behind the given
// middleware, typically a per-client rate limiter.
func (h *ContactHandler) RegisterPublicRoutes(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.POST("/contacts", h.Create, m...)
}

func (h *ContactHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/contacts", h.List)
	g.GET("/contacts/:id", h.Get)
	g.PATCH("/contacts/:id", h.Update)
	g.PATCH("/contacts/:id/status", h.UpdateStatus)
	g.DELETE("/contacts/:id", h.Delete)
}

// Create stores a contact message from a visitor.
// @Summary Send a contact message
// @Description Store a message from the contact form and notify the operator
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body createContactRequest true "Message"
// @Success 201 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	contact, err := h.service.Create(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toContactResponse(contact))
}

// List returns all contact messages.
// @Summary List contact messages
// @Description Get all contact messages, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} contactResponse
// @Failure 401 {object} errorResponse
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		response = append(response, toContactResponse(contact))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one contact message.
// @Summary Get a contact message
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid contact ID"})
	}
	contact, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Update edits a contact message.
// @Summary Update a contact message
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param contact body updateContactRequest true "Fields to change"
// @Success 200 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /contacts/{id} [patch]
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid contact ID"})
	}
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	contact, err := h.service.Update(c.Request().Context(), id, service.ContactPatch{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject.optional(),
		Message: req.Message,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// UpdateStatus moves a contact message to another status.
// @Summary Update contact status
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param status body updateContactStatusRequest true "New status"
// @Success 200 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /contacts/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid contact ID"})
	}
	var req updateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	contact, err := h.service.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toContactResponse(contact))
}

// Delete removes a contact message.
// @Summary Delete a contact message
// @Tags contacts
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 204 "No Content"
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid contact ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toContactResponse(contact model.Contact) contactResponse {
	return contactResponse{
		ID:        snowflake.FormatID(contact.ID),
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Status:    contact.Status,
		CreatedAt: formatTime(contact.CreatedAt),
		UpdatedAt: formatTime(contact.UpdatedAt),
	}
}
