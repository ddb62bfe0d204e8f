package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giveaway-wheel-backend/internal/common/middleware"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
	redisrepo "giveaway-wheel-backend/internal/features/participant/repository/redis"
	"giveaway-wheel-backend/internal/features/registration/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopNotifier struct{}

func (nopNotifier) SendMessage(context.Context, int64, string) error { return nil }
func (nopNotifier) SendPhoto(context.Context, int64, string, string) error { return nil }

type brokenInsertRepository struct {
	repository.ParticipantRepository
}

func (brokenInsertRepository) InsertCurrentIfAbsent(context.Context, models.Profile) (bool, error) {
	return false, errors.New("disk full")
}

func newRepository(t *testing.T) repository.ParticipantRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisrepo.NewRedisRepository(client)
}

func newRouter(repo repository.ParticipantRepository, secret string) *gin.Engine {
	svc := service.NewRegistrationService(repo, nopNotifier{}, service.Messages{
		Registered:         "ok %s",
		AlreadyRegistered:  "again %s",
		RegistrationFailed: "fail %s",
	})

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	NewWebhookHandler(svc).RegisterRoutes(router.Group("/api"), middleware.TelegramWebhookSecret(secret))
	return router
}

func post(router *gin.Engine, body string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/telegram", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

const goUpdate = `{
	"update_id": 1001,
	"message": {
		"message_id": 5,
		"date": 1710000000,
		"text": "  GO ",
		"from": {"id": 77, "is_bot": false, "first_name": "Ana", "username": "ana"},
		"chat": {"id": 77, "type": "private"}
	}
}`

func TestWebhookHandler_Registers(t *testing.T) {
	repo := newRepository(t)
	router := newRouter(repo, "")

	w := post(router, goUpdate, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"isNewParticipant":true,"userId":77}`, w.Body.String())

	w = post(router, goUpdate, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"isNewParticipant":false,"userId":77}`, w.Body.String())

	n, err := repo.CountCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestWebhookHandler_IgnoresOtherUpdates(t *testing.T) {
	router := newRouter(newRepository(t), "")

	for _, body := range []string{
		`{"update_id": 1}`,
		`{"update_id": 2, "message": {"message_id": 1, "date": 0, "chat": {"id": 1, "type": "private"}}}`,
		`{"update_id": 3, "message": {"message_id": 1, "date": 0, "text": "hello", "from": {"id": 1, "first_name": "A"}, "chat": {"id": 1, "type": "private"}}}`,
	} {
		w := post(router, body, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	}
}

func TestWebhookHandler_MalformedBody(t *testing.T) {
	router := newRouter(newRepository(t), "")

	w := post(router, `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_StorageFailure(t *testing.T) {
	router := newRouter(brokenInsertRepository{ParticipantRepository: newRepository(t)}, "")

	w := post(router, goUpdate, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestWebhookHandler_SecretToken(t *testing.T) {
	router := newRouter(newRepository(t), "s3cret")

	w := post(router, goUpdate, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(router, goUpdate, map[string]string{middleware.TelegramSecretHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(router, goUpdate, map[string]string{middleware.TelegramSecretHeader: "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
}
