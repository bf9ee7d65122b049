package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// LanguageKey is the gin context key holding the resolved language code.
const LanguageKey = "language_code"

// LocaleMiddleware resolves the request language for unprefixed routes:
// ?lang= wins when it names a configured language, otherwise the
// Accept-Language header is matched against the configured set, otherwise
// the default language applies.
func LocaleMiddleware(languages []string, defaultLanguage string) gin.HandlerFunc {
	// The default language goes first so it wins when nothing matches.
	codes := []string{defaultLanguage}
	tags := []language.Tag{}
	if tag, err := language.Parse(defaultLanguage); err == nil {
		tags = append(tags, tag)
	} else {
		tags = append(tags, language.Und)
	}
	for _, code := range languages {
		if code == defaultLanguage {
			continue
		}
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	matcher := language.NewMatcher(tags)

	supported := make(map[string]bool, len(languages))
	for _, code := range languages {
		supported[code] = true
	}

	return func(c *gin.Context) {
		if lang := c.Query("lang"); lang != "" && supported[lang] {
			c.Set(LanguageKey, lang)
			c.Next()
			return
		}

		_, index := language.MatchStrings(matcher, c.GetHeader("Accept-Language"))
		c.Set(LanguageKey, codes[index])
		c.Next()
	}
}

// ForcedLocaleMiddleware pins the language for a language-prefixed route
// group, e.g. /ru/courses.
func ForcedLocaleMiddleware(languageCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LanguageKey, languageCode)
		c.Next()
	}
}

// LanguageFromContext reads the language resolved by the locale middlewares.
func LanguageFromContext(c *gin.Context) string {
	return c.GetString(LanguageKey)
}
