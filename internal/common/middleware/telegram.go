package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
)

// TelegramSecretHeader is set by Telegram on every webhook delivery when
// setWebhook was called with a secret_token.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// TelegramWebhookSecret rejects webhook calls that do not carry the shared
// secret. An empty secret disables the check.
func TelegramWebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			logger.Warn().
				Str("client_ip", c.ClientIP()).
				Msg("Webhook call with invalid secret token")
			abortWith(c, errors.NewUnauthorizedError("invalid webhook secret token"))
			return
		}

		c.Next()
	}
}
