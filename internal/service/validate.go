package service

import (
	"net/url"
	"strings"
	"time"

	"portfolio/backend/internal/i18n"
)

// Optional is a patch field. Set false keeps the stored value; Set true with a
// nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func apply[T any](current *T, field Optional[T]) *T {
	if !field.Set {
		return current
	}
	return field.Value
}

func required(value, name string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalidf(name + " is required")
	}
	return trimmed, nil
}

// optionalText trims s and maps blank values to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// optionalURL trims raw and requires an absolute http(s) URL when present.
func optionalURL(raw *string, name string) (*string, error) {
	value := optionalText(raw)
	if value == nil {
		return nil, nil
	}
	parsed, err := url.Parse(*value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, invalidf(name + " must be an http(s) URL")
	}
	return value, nil
}

func normalizeTechnologies(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func checkPeriod(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return invalidf("startDate is required")
	}
	if end != nil && end.Before(start) {
		return invalidf("endDate must not be before startDate")
	}
	return nil
}

func normalizeLanguage(code string) string {
	return i18n.NormalizeCode(code)
}
