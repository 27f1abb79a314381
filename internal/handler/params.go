package handler

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio/backend/internal/i18n"
	"portfolio/backend/internal/service"
	"portfolio/backend/internal/snowflake"
)

// Context keys shared with the http middleware.
const (
	LanguageContextKey = "language"
	OperatorContextKey = "operator"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC3339")

func parseIDParam(c echo.Context, name string) (int64, error) {
	return snowflake.ParseID(c.Param(name))
}

// requestLanguage returns the language resolved by the language middleware,
// falling back to parsing the header when the middleware is not installed.
func requestLanguage(c echo.Context) string {
	if lang, ok := c.Get(LanguageContextKey).(string); ok && lang != "" {
		return lang
	}
	return i18n.ResolveLanguage(c.Request().Header.Get("Accept-Language"))
}

// currentOperator returns the operator stored by the auth middleware.
func currentOperator(c echo.Context) (service.Operator, bool) {
	operator, ok := c.Get(OperatorContextKey).(service.Operator)
	return operator, ok
}

// parseDate accepts a calendar date (normalized to midnight UTC) or an
// RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	// Only the UTC calendar day is kept.
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// nullable records whether a JSON field was present so that an explicit null
// clears a value while an absent field leaves it unchanged.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n nullable[T]) optional() service.Optional[T] {
	return service.Optional[T]{Set: n.Set, Value: n.Value}
}

// optionalDate converts a nullable date string into a patch field. An empty
// string clears the date like null does.
func optionalDate(n nullable[string]) (service.Optional[time.Time], error) {
	if !n.Set {
		return service.Optional[time.Time]{}, nil
	}
	t, err := parseDatePtr(n.Value)
	if err != nil {
		return service.Optional[time.Time]{}, err
	}
	return service.Optional[time.Time]{Set: true, Value: t}, nil
}
