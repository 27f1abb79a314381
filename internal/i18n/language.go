// Package i18n resolves the content language of a request.
package i18n

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when a request carries no usable language preference.
const DefaultLanguage = "en"

// SupportedLanguages lists the languages the site is authored in. The store
// does not enforce it. Translation drafts only target these.
var SupportedLanguages = []string{"en", "ru", "az"}

// ResolveLanguage returns the primary subtag of the highest-weighted entry in
// an Accept-Language header value ("ru-RU,en;q=0.9" -> "ru"), lowercased and
// exactly as the client sent it. Unknown and deprecated codes pass through
// ("iw" stays "iw"). Absent or unusable values resolve to DefaultLanguage.
func ResolveLanguage(header string) string {
	best := ""
	bestWeight := 0.0
	for _, entry := range strings.Split(header, ",") {
		tag, weight, ok := parseEntry(entry)
		if !ok || weight <= bestWeight {
			continue
		}
		best, bestWeight = tag, weight
	}
	if best == "" {
		return DefaultLanguage
	}
	if i := strings.IndexAny(best, "-_"); i >= 0 {
		best = best[:i]
	}
	return strings.ToLower(best)
}

// parseEntry splits one "tag;q=weight" entry. Wildcards, malformed tags and
// malformed or zero weights are rejected.
func parseEntry(entry string) (string, float64, bool) {
	parts := strings.Split(entry, ";")
	tag := strings.TrimSpace(parts[0])
	if tag == "" || tag == "*" || !wellFormed(tag) {
		return "", 0, false
	}

	weight := 1.0
	for _, param := range parts[1:] {
		param = strings.TrimSpace(param)
		if !strings.HasPrefix(param, "q=") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64)
		if err != nil || q < 0 || q > 1 {
			return "", 0, false
		}
		weight = q
	}
	if weight == 0 {
		return "", 0, false
	}
	return tag, weight, true
}

// wellFormed accepts syntactically valid BCP 47 tags even when a subtag is
// not in the registry.
func wellFormed(tag string) bool {
	_, err := language.Parse(tag)
	if err == nil {
		return true
	}
	var unknown language.ValueError
	return errors.As(err, &unknown)
}

// IsSupported reports whether code is one of SupportedLanguages.
func IsSupported(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}
	return false
}

// NormalizeCode lowercases and trims a language code submitted by an editor.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
