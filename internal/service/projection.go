package service

import (
	"fmt"
	"strings"

	"portfolio/backend/internal/i18n"
)

// TranslationPolicy decides what a public read does when a record has no
// translation in the requested language.
type TranslationPolicy string

const (
	// PolicyStrict fails the whole read with ErrMissingTranslation.
	PolicyStrict TranslationPolicy = "strict"
	// PolicyFallback serves the default-language translation instead.
	PolicyFallback TranslationPolicy = "fallback"
	// PolicyOmit drops untranslated records from listings and reports
	// single-record reads as not found.
	PolicyOmit TranslationPolicy = "omit"
)

func ParseTranslationPolicy(s string) (TranslationPolicy, error) {
	switch TranslationPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyFallback:
		return PolicyFallback, nil
	case PolicyOmit:
		return PolicyOmit, nil
	default:
		return "", fmt.Errorf("unknown translation policy %q", s)
	}
}

// lookupLanguages returns the translation rows worth loading for lang.
func (p TranslationPolicy) lookupLanguages(lang string) []string {
	if p == PolicyFallback && lang != i18n.DefaultLanguage {
		return []string{lang, i18n.DefaultLanguage}
	}
	return []string{lang}
}

type translation interface {
	Lang() string
}

func pickTranslation[T translation](policy TranslationPolicy, translations []T, lang string) (T, bool) {
	for _, t := range translations {
		if t.Lang() == lang {
			return t, true
		}
	}
	if policy == PolicyFallback {
		for _, t := range translations {
			if t.Lang() == i18n.DefaultLanguage {
				return t, true
			}
		}
	}
	var zero T
	return zero, false
}

// localized pairs a record with the translation chosen for it.
type localized[E any, T translation] struct {
	record      E
	translation T
}

// localizeAll resolves one translation per record. A record without one aborts
// the read unless the policy is PolicyOmit, which skips it.
func localizeAll[E any, T translation](
	policy TranslationPolicy,
	resource string,
	lang string,
	records []E,
	parts func(E) (int64, []T),
) ([]localized[E, T], error) {
	result := make([]localized[E, T], 0, len(records))
	for _, record := range records {
		id, translations := parts(record)
		t, ok := pickTranslation(policy, translations, lang)
		if !ok {
			if policy == PolicyOmit {
				continue
			}
			return nil, &MissingTranslationError{Resource: resource, ID: id, Language: lang}
		}
		result = append(result, localized[E, T]{record: record, translation: t})
	}
	return result, nil
}

// localizeOne resolves the translation of a single record. Under PolicyOmit a
// missing translation reads as not found.
func localizeOne[E any, T translation](
	policy TranslationPolicy,
	resource string,
	lang string,
	record E,
	parts func(E) (int64, []T),
) (localized[E, T], error) {
	id, translations := parts(record)
	if t, ok := pickTranslation(policy, translations, lang); ok {
		return localized[E, T]{record: record, translation: t}, nil
	}
	if policy == PolicyOmit {
		return localized[E, T]{}, ErrNotFound
	}
	return localized[E, T]{}, &MissingTranslationError{Resource: resource, ID: id, Language: lang}
}

// checkLanguages validates a submitted translation set: every entry names a
// language and no language appears twice.
func checkLanguages[T translation](translations []T) error {
	seen := make(map[string]struct{}, len(translations))
	for _, t := range translations {
		lang := t.Lang()
		if lang == "" {
			return invalidf("translation language is required")
		}
		if _, dup := seen[lang]; dup {
			return invalidf("duplicate translation language " + lang)
		}
		seen[lang] = struct{}{}
	}
	return nil
}
