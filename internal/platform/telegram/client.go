package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"giveaway-wheel-backend/internal/common/logger"
)

const (
	DefaultAPIURL = "https://api.telegram.org"

	requestTimeout = 10 * time.Second
)

// ErrNotConfigured возвращается всеми операциями клиента без токена бота
var ErrNotConfigured = errors.New("telegram bot token is not configured")

// Gateway описывает исходящие вызовы Bot API, которые нужны приложению
type Gateway interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string) error
	SetWebhook(ctx context.Context, webhookURL, secret string) (bool, error)
	GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// Options настраивают клиент Bot API
type Options struct {
	Token string
	// Пустое значение означает DefaultAPIURL
	APIURL     string
	HTTPClient *http.Client
}

// Client is the Bot API gateway. A client built without a token is in the
// "not configured" state and every call returns ErrNotConfigured.
type Client struct {
	bot *bot.Bot
}

var _ Gateway = (*Client)(nil)

func NewClient(opts Options) (*Client, error) {
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN is empty, Telegram gateway is not configured")
		return &Client{}, nil
	}

	apiURL := strings.TrimRight(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	b, err := bot.New(token,
		bot.WithSkipGetMe(),
		bot.WithServerURL(apiURL),
		bot.WithHTTPClient(requestTimeout, httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().
		Str("api_url", apiURL).
		Msg("Telegram gateway initialized")

	return &Client{bot: b}, nil
}

// Configured сообщает, есть ли у клиента токен бота
func (c *Client) Configured() bool {
	return c != nil && c.bot != nil
}

// SendMessage отправляет HTML-текст в чат
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("sendMessage to %d: %w", chatID, err)
	}

	return nil
}

// SendPhoto отправляет фото по URL с HTML-подписью
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	_, err := c.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     &models.InputFileString{Data: photoURL},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("sendPhoto to %d: %w", chatID, err)
	}

	return nil
}

// SetWebhook регистрирует адрес вебхука. Приходят только обновления message.
func (c *Client) SetWebhook(ctx context.Context, webhookURL, secret string) (bool, error) {
	if !c.Configured() {
		return false, ErrNotConfigured
	}

	ok, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:            webhookURL,
		AllowedUpdates: []string{"message"},
		SecretToken:    secret,
	})
	if err != nil {
		return false, fmt.Errorf("setWebhook: %w", err)
	}

	logger.Info().
		Str("webhook_url", webhookURL).
		Bool("ok", ok).
		Msg("Telegram webhook updated")

	return ok, nil
}

func (c *Client) GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	info, err := c.bot.GetWebhookInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("getWebhookInfo: %w", err)
	}

	return info, nil
}
