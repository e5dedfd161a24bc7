package reference

import "strings"

type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Languages returns the selectable wake-up voice languages. Shared static
// data; callers must not modify it.
func Languages() []Language {
	return languages
}

func LanguageByCode(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// SearchLanguages filters by case-insensitive substring match on the display
// or native name, the way the language screen's search field does. A blank
// query returns everything.
func SearchLanguages(query string) []Language {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return languages
	}

	var out []Language
	for _, l := range languages {
		if strings.Contains(strings.ToLower(l.Name), query) ||
			strings.Contains(strings.ToLower(l.NativeName), query) {
			out = append(out, l)
		}
	}
	return out
}

var languages = []Language{
	{Code: "en-US", Name: "English", NativeName: "English"},
	{Code: "en-GB", Name: "English (UK)", NativeName: "English (UK)"},
	{Code: "es-ES", Name: "Spanish", NativeName: "Español"},
	{Code: "es-MX", Name: "Spanish (Mexico)", NativeName: "Español (México)"},
	{Code: "fr-FR", Name: "French", NativeName: "Français"},
	{Code: "de-DE", Name: "German", NativeName: "Deutsch"},
	{Code: "it-IT", Name: "Italian", NativeName: "Italiano"},
	{Code: "pt-BR", Name: "Portuguese (Brazil)", NativeName: "Português (Brasil)"},
	{Code: "pt-PT", Name: "Portuguese", NativeName: "Português"},
	{Code: "ja-JP", Name: "Japanese", NativeName: "日本語"},
	{Code: "ko-KR", Name: "Korean", NativeName: "한국어"},
	{Code: "zh-CN", Name: "Chinese (Simplified)", NativeName: "简体中文"},
	{Code: "zh-TW", Name: "Chinese (Traditional)", NativeName: "繁體中文"},
	{Code: "ru-RU", Name: "Russian", NativeName: "Русский"},
	{Code: "ar-SA", Name: "Arabic", NativeName: "العربية"},
	{Code: "hi-IN", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "nl-NL", Name: "Dutch", NativeName: "Nederlands"},
	{Code: "sv-SE", Name: "Swedish", NativeName: "Svenska"},
	{Code: "pl-PL", Name: "Polish", NativeName: "Polski"},
	{Code: "tr-TR", Name: "Turkish", NativeName: "Türkçe"},
}
