package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giveaway-wheel-backend/internal/common/errors"
)

func assertValidation(t *testing.T, err error) {
	t.Helper()
	appErr, ok := errors.AsAppError(err)
	if assert.True(t, ok, "expected *AppError, got %v", err) {
		assert.True(t, appErr.IsValidation())
	}
}

func TestValidateBroadcastMessage(t *testing.T) {
	assert.NoError(t, ValidateBroadcastMessage("hello", false))
	assert.NoError(t, ValidateBroadcastMessage(strings.Repeat("я", MaxMessageLength), false))

	assertValidation(t, ValidateBroadcastMessage("  \n ", false))
	assertValidation(t, ValidateBroadcastMessage(strings.Repeat("a", MaxMessageLength+1), false))
	assertValidation(t, ValidateBroadcastMessage(strings.Repeat("a", MaxCaptionLength+1), true))
}

func TestValidatePhotoURL(t *testing.T) {
	for _, ok := range []string{"", "  ", "http://example.com/a.png", "https://cdn.example.com/p/1.jpg"} {
		assert.NoError(t, ValidatePhotoURL(ok), ok)
	}
	for _, bad := range []string{"example.com/a.png", "ftp://example.com/a.png", "https://", "/photos/a.png"} {
		assertValidation(t, ValidatePhotoURL(bad))
	}
}

func TestValidateWebhookURL(t *testing.T) {
	assert.NoError(t, ValidateWebhookURL("https://bot.example.com/api/webhook/telegram"))

	assertValidation(t, ValidateWebhookURL(""))
	assertValidation(t, ValidateWebhookURL("http://bot.example.com/api/webhook/telegram"))
	assertValidation(t, ValidateWebhookURL("not a url"))
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("image/png", 10, 100))
	assert.NoError(t, ValidateImage("IMAGE/JPEG", DefaultMaxImageSize, 0))

	assertValidation(t, ValidateImage("application/pdf", 10, 100))
	assertValidation(t, ValidateImage("image/png", 101, 100))
	assertValidation(t, ValidateImage("image/png", 0, 100))
}

func TestBindingError(t *testing.T) {
	type request struct {
		Message string `validate:"required"`
	}
	fieldErr := validator.New().Struct(request{})
	require.Error(t, fieldErr)

	appErr := BindingError(fieldErr)
	assertValidation(t, appErr)
	assert.Equal(t, "Message", appErr.Details["field"])
	assert.Equal(t, "failed on the 'required' rule", appErr.Details["reason"])

	appErr = BindingError(stderrors.New("unexpected EOF"))
	assertValidation(t, appErr)
	assert.Equal(t, "body", appErr.Details["field"])
}
