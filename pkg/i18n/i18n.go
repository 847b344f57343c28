// Package i18n holds the English and Malayalam UI strings and resolves the
// language of a request.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const LangParam = "lang"

var (
	English   = language.English
	Malayalam = language.Malayalam

	supported = []language.Tag{English, Malayalam}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse maps a user supplied value ("en", "ml", "ml-IN", ...) to a supported tag.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return English, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return English, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English, false
	}
	return base(matched), true
}

// Resolve picks the language for r: the lang query parameter, then
// Accept-Language, then fallback.
func Resolve(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}

	if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return tag
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return base(matched)
			}
		}
	}

	return fallback
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(base(tag))
}

// IsEnglish reports whether tag resolves to English.
func IsEnglish(tag language.Tag) bool {
	return base(tag) == English
}

// Pick returns en or ml depending on tag. Used for bilingual content records.
func Pick(tag language.Tag, en, ml string) string {
	if IsEnglish(tag) || ml == "" {
		return en
	}
	return ml
}

func base(tag language.Tag) language.Tag {
	b, _ := tag.Base()
	switch b.String() {
	case "ml":
		return Malayalam
	default:
		return English
	}
}
