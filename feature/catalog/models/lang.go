package models

// Language pairs a content index of a localized text record with its output code.
type Language struct {
	Index int
	Code  string
}

// languages is the fixed content-index table. Gaps are intentional: unmapped indices
// are ignored.
var languages = [...]Language{
	{0, "ja"},
	{1, "en"},
	{2, "fr"},
	{3, "it"},
	{4, "de"},
	{5, "es"},
	{6, "ru"},
	{7, "pl"},
	{10, "pt"},
	{11, "ko"},
	{12, "zh-Hant"},
	{13, "zh-Hans"},
	{21, "ar"},
}

const (
	// LangIndexJapanese is the content index checked for record validity.
	LangIndexJapanese = 0
	// LangIndexEnglish is the content index slugs are derived from.
	LangIndexEnglish = 1
)

// Languages returns a copy of the language table in index order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages[:])
	return out
}

// LanguageCodes returns the output language codes in index order.
func LanguageCodes() []string {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	return codes
}

// LanguageAt returns the code mapped to a content index.
func LanguageAt(index int) (string, bool) {
	for _, l := range languages {
		if l.Index == index {
			return l.Code, true
		}
	}
	return "", false
}

// LocalizedNames maps content to language codes, omitting empty strings and
// indices beyond the content length.
func LocalizedNames(content []string) map[string]string {
	names := make(map[string]string, len(languages))
	for _, l := range languages {
		if l.Index >= len(content) || content[l.Index] == "" {
			continue
		}
		names[l.Code] = content[l.Index]
	}
	return names
}
