package editor

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/dshills/codeditor/internal/config"
)

// DetectLanguage guesses the language of a file from its name and, failing
// that, a shebang line. It returns config.DefaultLanguage when neither
// helps. Names are lower-cased go-enry language names.
func DetectLanguage(filename string, content []byte) string {
	if filename != "" {
		if lang, _ := enry.GetLanguageByExtension(filepath.Base(filename)); lang != "" {
			return normalize(lang)
		}
		if lang, _ := enry.GetLanguageByFilename(filepath.Base(filename)); lang != "" {
			return normalize(lang)
		}
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return normalize(lang)
	}
	return config.DefaultLanguage
}

func normalize(lang string) string {
	return strings.ToLower(lang)
}
