package service

import (
	"context"
	stderrors "errors"
	"strings"

	tgmodels "github.com/go-telegram/bot/models"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/validation"
	"giveaway-wheel-backend/internal/platform/telegram"
)

// Gateway is the part of the Telegram client that manages the webhook.
type Gateway interface {
	SetWebhook(ctx context.Context, webhookURL, secret string) (bool, error)
	GetWebhookInfo(ctx context.Context) (*tgmodels.WebhookInfo, error)
}

// SetupResponse mirrors the Bot API setWebhook reply.
type SetupResponse struct {
	OK          bool   `json:"ok" example:"true"`
	Result      bool   `json:"result" example:"true"`
	Description string `json:"description,omitempty" example:"Webhook was set"`
}

// InfoResponse mirrors the Bot API getWebhookInfo reply.
type InfoResponse struct {
	OK     bool                  `json:"ok" example:"true"`
	Result *tgmodels.WebhookInfo `json:"result"`
}

type WebhookService interface {
	Setup(ctx context.Context, webhookURL string) (*SetupResponse, error)
	Info(ctx context.Context) (*InfoResponse, error)
}

type webhookService struct {
	gateway Gateway
	secret  string
}

// NewWebhookService builds the service. secret is forwarded to Telegram as secret_token.
func NewWebhookService(gateway Gateway, secret string) WebhookService {
	return &webhookService{
		gateway: gateway,
		secret:  secret,
	}
}

func (s *webhookService) Setup(ctx context.Context, webhookURL string) (*SetupResponse, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if err := validation.ValidateWebhookURL(webhookURL); err != nil {
		return nil, err
	}

	ok, err := s.gateway.SetWebhook(ctx, webhookURL, s.secret)
	if err != nil {
		return nil, mapGatewayError("setWebhook", err)
	}

	description := "Webhook was set"
	if !ok {
		description = "Webhook was not set"
	}

	return &SetupResponse{OK: true, Result: ok, Description: description}, nil
}

func (s *webhookService) Info(ctx context.Context) (*InfoResponse, error) {
	info, err := s.gateway.GetWebhookInfo(ctx)
	if err != nil {
		return nil, mapGatewayError("getWebhookInfo", err)
	}

	return &InfoResponse{OK: true, Result: info}, nil
}

func mapGatewayError(op string, err error) error {
	if stderrors.Is(err, telegram.ErrNotConfigured) {
		return errors.NewTelegramNotConfiguredError()
	}
	return errors.NewTelegramAPIError(op, err)
}
