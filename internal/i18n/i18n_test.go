package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{"ML", Malayalam, true},
		{"ml-IN", Malayalam, true},
		{"en_GB", English, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := Parse(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	ml := New(Malayalam)
	assert.Equal(t, "ഫലങ്ങൾ", ml.T("nav.results"))

	t.Run("missing Malayalam key uses English", func(t *testing.T) {
		assert.Equal(t, "Show", ml.T("results.show"))
	})

	t.Run("unknown key returns the key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", ml.T("no.such.key"))
	})

	t.Run("unknown language translates as English", func(t *testing.T) {
		tr := New(Language("fr"))
		assert.Equal(t, English, tr.Language())
		assert.Equal(t, "Results", tr.T("nav.results"))
	})
}

func TestEveryMalayalamKeyExistsInEnglish(t *testing.T) {
	for key := range catalog[Malayalam] {
		_, ok := catalog[English][key]
		assert.True(t, ok, key)
	}
}
