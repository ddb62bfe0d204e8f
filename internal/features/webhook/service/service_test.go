package service

import (
	"context"
	"errors"
	"testing"

	tgmodels "github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/platform/telegram"
)

type fakeGateway struct {
	url    string
	secret string
	ok     bool
	err    error
	info   *tgmodels.WebhookInfo
}

func (f *fakeGateway) SetWebhook(_ context.Context, webhookURL, secret string) (bool, error) {
	f.url, f.secret = webhookURL, secret
	return f.ok, f.err
}

func (f *fakeGateway) GetWebhookInfo(context.Context) (*tgmodels.WebhookInfo, error) {
	return f.info, f.err
}

func code(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Code
}

func TestSetup(t *testing.T) {
	gw := &fakeGateway{ok: true}
	svc := NewWebhookService(gw, "s3cret")

	result, err := svc.Setup(context.Background(), " https://example.com/api/webhook/telegram ")
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.True(t, result.Result)
	assert.Equal(t, "https://example.com/api/webhook/telegram", gw.url)
	assert.Equal(t, "s3cret", gw.secret)
}

func TestSetup_Validation(t *testing.T) {
	svc := NewWebhookService(&fakeGateway{ok: true}, "")

	for _, u := range []string{"", "   ", "http://example.com/hook", "not a url"} {
		_, err := svc.Setup(context.Background(), u)
		assert.Equal(t, apperrors.ErrCodeValidation, code(t, err), u)
	}
}

func TestSetup_GatewayErrors(t *testing.T) {
	_, err := NewWebhookService(&fakeGateway{err: telegram.ErrNotConfigured}, "").
		Setup(context.Background(), "https://example.com/hook")
	assert.Equal(t, apperrors.ErrCodeTelegramNotConfigured, code(t, err))

	_, err = NewWebhookService(&fakeGateway{err: errors.New("Bad Request: bad webhook")}, "").
		Setup(context.Background(), "https://example.com/hook")
	assert.Equal(t, apperrors.ErrCodeTelegramAPI, code(t, err))
}

func TestInfo(t *testing.T) {
	gw := &fakeGateway{info: &tgmodels.WebhookInfo{URL: "https://example.com/hook", PendingUpdateCount: 2}}

	result, err := NewWebhookService(gw, "").Info(context.Background())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "https://example.com/hook", result.Result.URL)

	_, err = NewWebhookService(&fakeGateway{err: telegram.ErrNotConfigured}, "").Info(context.Background())
	assert.Equal(t, apperrors.ErrCodeTelegramNotConfigured, code(t, err))
}
