// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/marketplace-backend/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage picks the first language of an Accept-Language header,
// e.g. "zh-TW,zh;q=0.9,en;q=0.8".
func parseLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLanguage()
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])

	// Convert common language codes
	var lang string
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW":
		lang = "zh_TW"
	case "en", "en-US", "en-GB":
		lang = "en"
	default:
		lang = first
	}

	if !i18n.IsSupported(lang) {
		return i18n.DefaultLanguage()
	}
	return lang
}
