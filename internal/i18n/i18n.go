// Package i18n resolves bilingual content fields. Every translatable column
// is stored three times: a legacy unsuffixed value kept for older clients,
// an English value and a Macedonian value. Resolution walks an ordered list
// of storage locations per field, never constructed field names.
package i18n

type Lang string

const (
	LangEN Lang = "en"
	LangMK Lang = "mk"
)

// Parse validates a language code. Unknown codes are rejected so the
// request middleware can fall through to the configured default.
func Parse(code string) (Lang, bool) {
	switch Lang(code) {
	case LangEN, LangMK:
		return Lang(code), true
	}
	return "", false
}

// Text maps one logical field to its concrete storage locations.
type Text struct {
	EN     string
	MK     string
	Legacy string
}

// Resolve picks the effective value: requested language if non-empty,
// then English, then the legacy column. Fields resolve independently,
// so one record may surface a mix of languages.
func (t Text) Resolve(lang Lang) string {
	for _, v := range t.candidates(lang) {
		if v != "" {
			return v
		}
	}
	return ""
}

func (t Text) candidates(lang Lang) []string {
	if lang == LangMK {
		return []string{t.MK, t.EN, t.Legacy}
	}
	return []string{t.EN, t.Legacy}
}

// List applies the two-tier fallback for list-valued fields: the requested
// language's list when present and non-empty, otherwise the default list.
// There is no per-element fallback.
func List(lang Lang, def, mk []string) []string {
	if lang == LangMK && len(mk) > 0 {
		return mk
	}
	return def
}
