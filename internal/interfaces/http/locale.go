package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

var (
	supportedLocales = []language.Tag{language.Spanish, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// requestLocale elige "es" o "en": primero ?locale=, luego Accept-Language.
// Vacío deja que el caso de uso aplique el idioma por defecto.
func requestLocale(c *fiber.Ctx) string {
	if q := strings.TrimSpace(c.Query("locale")); q != "" {
		return q
	}
	header := c.Get(fiber.HeaderAcceptLanguage)
	if header == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	base, _ := supportedLocales[idx].Base()
	return base.String()
}
