package middleware

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"giveaway-wheel-backend/internal/common/errors"
)

const (
	userKey = "user"

	// Заголовок, который отправляет Telegram Mini App дашборда
	initDataHeader = "init_data"
)

// AdminAuthConfig описывает способы входа администратора.
type AdminAuthConfig struct {
	BotToken    string
	InitDataTTL time.Duration
	AdminIDs    []int64
	// Статический ключ для инструментов (webhookctl), пустой отключает вход по ключу
	APIKey string
}

// RequireAdmin пропускает только администраторов: init data Telegram Mini App
// с ID из ADMIN_IDS или Bearer ADMIN_API_KEY.
func RequireAdmin(cfg AdminAuthConfig) gin.HandlerFunc {
	admins := make(map[int64]struct{}, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		admins[id] = struct{}{}
	}

	return func(c *gin.Context) {
		scheme, credentials := authCredentials(c)

		switch scheme {
		case "bearer":
			if cfg.APIKey == "" || subtle.ConstantTimeCompare([]byte(credentials), []byte(cfg.APIKey)) != 1 {
				abortWith(c, errors.NewUnauthorizedError("invalid API key"))
				return
			}
			c.Next()
			return

		case "tma":
			if cfg.BotToken == "" {
				abortWith(c, errors.NewTelegramNotConfiguredError())
				return
			}

			if err := initdata.Validate(credentials, cfg.BotToken, cfg.InitDataTTL); err != nil {
				abortWith(c, errors.NewUnauthorizedError("invalid init data").WithDetail("cause", err.Error()))
				return
			}

			parsed, err := initdata.Parse(credentials)
			if err != nil {
				abortWith(c, errors.NewUnauthorizedError("malformed init data"))
				return
			}

			if _, ok := admins[parsed.User.ID]; !ok {
				c.Set(userIDKey, parsed.User.ID)
				abortWith(c, errors.NewForbiddenError("admin access required"))
				return
			}

			c.Set(userKey, parsed.User)
			c.Set(userIDKey, parsed.User.ID)
			c.Next()
			return
		}

		abortWith(c, errors.NewUnauthorizedError("credentials required"))
	}
}

// authCredentials достает схему и данные авторизации:
// "Authorization: tma <init data>", "Authorization: Bearer <key>" или заголовок init_data.
func authCredentials(c *gin.Context) (string, string) {
	if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
		scheme, value, ok := strings.Cut(header, " ")
		if ok {
			return strings.ToLower(scheme), strings.TrimSpace(value)
		}
	}

	if raw := c.GetHeader(initDataHeader); raw != "" {
		return "tma", raw
	}

	return "", ""
}

func abortWith(c *gin.Context, err *errors.AppError) {
	_ = c.Error(err)
	c.Abort()
}
