package middleware

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"smartagri/pkg/i18n"
)

const ContextLanguage = "lang"

// Language resolves the request language once and stores it on the context.
func Language(fallback language.Tag) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tag := i18n.Resolve(c.Request(), fallback)
			c.Set(ContextLanguage, tag)
			c.Response().Header().Set("Content-Language", tag.String())
			return next(c)
		}
	}
}

// LanguageFrom returns the tag set by Language, English when unset.
func LanguageFrom(c echo.Context) language.Tag {
	if tag, ok := c.Get(ContextLanguage).(language.Tag); ok {
		return tag
	}
	return i18n.English
}

func PrinterFrom(c echo.Context) *message.Printer {
	return i18n.Printer(LanguageFrom(c))
}
