package types_test

import (
	"testing"

	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLang  types.Language
		supported bool
	}{
		{
			name:      "sql extension",
			path:      "migrations/001_init.sql",
			wantLang:  types.LangSQL,
			supported: true,
		},
		{
			name:      "elm extension",
			path:      "src/Views/Login.elm",
			wantLang:  types.LangElm,
			supported: true,
		},
		{
			name:      "uppercase extension",
			path:      "DUMP.SQL",
			wantLang:  types.LangSQL,
			supported: true,
		},
		{
			name:      "unsupported extension",
			path:      "main.go",
			supported: false,
		},
		{
			name:      "no extension",
			path:      "Makefile",
			supported: false,
		},
		{
			name:      "extension only in directory name",
			path:      "backups.sql/readme.txt",
			supported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := types.LanguageForPath(tt.path)
			assert.Equal(t, tt.supported, ok)
			assert.Equal(t, tt.wantLang, lang)
		})
	}
}

func TestLanguages(t *testing.T) {
	langs := types.Languages()
	assert.Equal(t, []types.Language{types.LangSQL, types.LangElm}, langs)
}
