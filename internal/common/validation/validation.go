package validation

import (
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"giveaway-wheel-backend/internal/common/errors"
)

const (
	// Ограничения Telegram Bot API
	MaxMessageLength = 4096
	MaxCaptionLength = 1024

	// Максимальный размер загружаемого изображения по умолчанию
	DefaultMaxImageSize int64 = 5 * 1024 * 1024

	imageContentTypePrefix = "image/"
)

// ValidateBroadcastMessage проверяет текст рассылки. С фото текст уходит
// подписью и ограничен MaxCaptionLength.
func ValidateBroadcastMessage(message string, withPhoto bool) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errors.NewValidationError("message", "message cannot be empty")
	}

	limit := MaxMessageLength
	if withPhoto {
		limit = MaxCaptionLength
	}
	if utf8.RuneCountInString(message) > limit {
		return errors.NewValidationError("message", fmt.Sprintf("message cannot exceed %d characters", limit))
	}

	return nil
}

// ValidatePhotoURL проверяет необязательную ссылку на фото
func ValidatePhotoURL(photoURL string) error {
	photoURL = strings.TrimSpace(photoURL)
	if photoURL == "" {
		return nil
	}

	if !isHTTPURL(photoURL, false) {
		return errors.NewValidationError("photoUrl", "photo URL must be an absolute http(s) URL")
	}

	return nil
}

// ValidateWebhookURL проверяет адрес вебхука: Telegram принимает только HTTPS
func ValidateWebhookURL(webhookURL string) error {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return errors.NewValidationError("webhookUrl", "webhook URL is required")
	}

	if !isHTTPURL(webhookURL, true) {
		return errors.NewValidationError("webhookUrl", "webhook URL must be an absolute https URL")
	}

	return nil
}

// ValidateImage проверяет тип и размер загружаемого изображения
func ValidateImage(contentType string, size, maxSize int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), imageContentTypePrefix) {
		return errors.NewValidationError("photo", "file must be an image")
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	if size > maxSize {
		return errors.NewValidationError("photo", fmt.Sprintf("image cannot exceed %d bytes", maxSize)).
			WithDetail("max_size", maxSize).
			WithDetail("size", size)
	}

	if size == 0 {
		return errors.NewValidationError("photo", "file is empty")
	}

	return nil
}

func isHTTPURL(raw string, httpsOnly bool) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	switch u.Scheme {
	case "https":
		return true
	case "http":
		return !httpsOnly
	default:
		return false
	}
}

// BindingError превращает ошибку gin ShouldBindJSON в ошибку валидации:
// нарушенное правило binding-тега называет поле, остальное считается битым телом.
func BindingError(err error) *errors.AppError {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}

	return errors.NewValidationError("body", "invalid request body")
}
