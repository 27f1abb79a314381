package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/logger"
	"portfolio/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeServiceError(c echo.Context, err error) error {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: validation.Message})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrUploadFailed):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "service unavailable"})
	case errors.Is(err, service.ErrMissingTranslation):
		logger.Error("missing translation",
			"module", "handler",
			"action", "fetch",
			"resource", "translation",
			"result", "failed",
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	default:
		logger.Error("request failed",
			"module", "handler",
			"action", "request",
			"resource", "http",
			"result", "failed",
			"path", c.Request().URL.Path,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// nonNil keeps empty lists rendering as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
