package types

import (
	"path/filepath"
	"strings"
)

// Language identifies a rule set and scanner dialect
type Language string

const (
	LangSQL Language = "sql"
	LangElm Language = "elm"
)

// LanguageForPath classifies a file by extension. The second return is
// false for files no scanner handles.
func LanguageForPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sql":
		return LangSQL, true
	case ".elm":
		return LangElm, true
	default:
		return "", false
	}
}

// Languages returns all supported languages in a stable order
func Languages() []Language {
	return []Language{LangSQL, LangElm}
}
