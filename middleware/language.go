package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gogevgelija/gogevgelija-backend/config"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

const langKey = "lang"

// Language negotiates the content language once per request. Priority:
// explicit ?lang= query param, then the authenticated profile preference,
// then the Accept-Language header, then the configured default. Must run
// after OptionalAuth so the profile preference is visible.
func Language(cfg *config.Config) gin.HandlerFunc {
	fallback, ok := i18n.Parse(cfg.DefaultLanguage)
	if !ok {
		fallback = i18n.LangEN
	}

	return func(c *gin.Context) {
		if lang, ok := i18n.Parse(c.Query("lang")); ok {
			c.Set(langKey, lang)
			c.Next()
			return
		}

		if user, ok := UserFromContext(c); ok && user.Profile != nil {
			if lang, ok := i18n.Parse(user.Profile.Language); ok {
				c.Set(langKey, lang)
				c.Next()
				return
			}
		}

		if lang, ok := i18n.Parse(acceptLanguagePrefix(c.GetHeader("Accept-Language"))); ok {
			c.Set(langKey, lang)
			c.Next()
			return
		}

		c.Set(langKey, fallback)
		c.Next()
	}
}

// LangFromContext returns the negotiated language for this request.
func LangFromContext(c *gin.Context) i18n.Lang {
	if raw, exists := c.Get(langKey); exists {
		if lang, ok := raw.(i18n.Lang); ok {
			return lang
		}
	}
	return i18n.LangEN
}

// acceptLanguagePrefix extracts the primary subtag of the first entry,
// e.g. "mk-MK,mk;q=0.9,en;q=0.8" -> "mk".
func acceptLanguagePrefix(header string) string {
	first := strings.SplitN(header, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	first = strings.SplitN(first, "-", 2)[0]
	return strings.TrimSpace(strings.ToLower(first))
}
