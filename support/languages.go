package support

import "strings"

// LanguageNames maps detector language codes to display names. The set is
// closed: codes outside it are displayed as their uppercased form.
var LanguageNames = map[string]string{
	"en": "English", "es": "Spanish", "hi": "Hindi", "mr": "Marathi",
	"fr": "French", "de": "German", "it": "Italian", "pt": "Portuguese",
	"ja": "Japanese", "ko": "Korean", "zh": "Chinese", "ru": "Russian",
	"ar": "Arabic", "bn": "Bengali", "ta": "Tamil", "te": "Telugu",
}

// LanguageName returns the display name for a language code
func LanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
