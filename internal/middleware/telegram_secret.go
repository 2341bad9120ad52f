package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "habit-notes/pkg/errors"
	"habit-notes/pkg/response"
)

// TelegramSecretHeader is set by Telegram on webhook calls when the webhook
// was registered with a secret token.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramSecret rejects webhook calls whose secret token does not match.
// With no token configured every call is accepted.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramToken == "" {
			c.Next()
			return
		}
		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.telegramToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid webhook token"), nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
