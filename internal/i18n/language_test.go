package i18n_test

import (
	"testing"

	"portfolio/backend/internal/i18n"

	"github.com/stretchr/testify/require"
)

func TestResolveLanguage(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty", header: "", want: "en"},
		{name: "blank", header: "   ", want: "en"},
		{name: "plain", header: "ru", want: "ru"},
		{name: "region", header: "ru-RU,en;q=0.9", want: "ru"},
		{name: "uppercase", header: "AZ-az", want: "az"},
		{name: "weights", header: "en;q=0.4,az;q=0.8", want: "az"},
		{name: "unsupported passes through", header: "de-DE,de;q=0.9", want: "de"},
		{name: "wildcard", header: "*", want: "en"},
		{name: "wildcard then language", header: "*,ru;q=0.5", want: "ru"},
		{name: "garbage", header: "!!!;;q=abc", want: "en"},
		{name: "unknown code", header: "xx", want: "xx"},
		{name: "unknown code with region", header: "xx-XX,en;q=0.9", want: "xx"},
		{name: "deprecated hebrew kept", header: "iw", want: "iw"},
		{name: "deprecated indonesian kept", header: "in-ID", want: "in"},
		{name: "tagalog not expanded", header: "tl", want: "tl"},
		{name: "underscore separator", header: "en_US", want: "en"},
		{name: "zero weight skipped", header: "de;q=0,ru", want: "ru"},
		{name: "equal weights keep order", header: "az;q=0.7,ru;q=0.7", want: "az"},
		{name: "bad weight skipped", header: "de;q=high,ru;q=0.2", want: "ru"},
		{name: "malformed entry skipped", header: "???,az", want: "az"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, i18n.ResolveLanguage(tc.header))
		})
	}
}

func TestIsSupported(t *testing.T) {
	require.True(t, i18n.IsSupported("en"))
	require.True(t, i18n.IsSupported("az"))
	require.False(t, i18n.IsSupported("de"))
}

func TestNormalizeCode(t *testing.T) {
	require.Equal(t, "ru", i18n.NormalizeCode("  RU "))
}
