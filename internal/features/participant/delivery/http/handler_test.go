package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/middleware"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
	redisrepo "giveaway-wheel-backend/internal/features/participant/repository/redis"
	"giveaway-wheel-backend/internal/features/participant/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, admin gin.HandlerFunc) (*gin.Engine, repository.ParticipantRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := redisrepo.NewRedisRepository(client)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	NewParticipantHandler(service.NewParticipantService(repo)).RegisterRoutes(router.Group("/api"), admin)

	return router, repo
}

func allowAll(c *gin.Context) { c.Next() }

func denyAll(c *gin.Context) {
	_ = c.Error(errors.NewUnauthorizedError("credentials required"))
	c.Abort()
}

func seed(t *testing.T, repo repository.ParticipantRepository, profiles ...models.Profile) {
	t.Helper()
	for _, p := range profiles {
		require.NoError(t, repo.UpsertHistory(context.Background(), p, time.Now()))
		_, err := repo.InsertCurrentIfAbsent(context.Background(), p)
		require.NoError(t, err)
	}
}

func do(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestParticipantHandler_List(t *testing.T) {
	router, repo := newTestRouter(t, allowAll)
	seed(t, repo,
		models.Profile{TelegramUserID: 1, FirstName: "Ana", Username: "ana"},
		models.Profile{TelegramUserID: 2, FirstName: "Bob"},
	)

	w := do(router, http.MethodGet, "/api/participants")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Participants []map[string]any `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Participants, 2)
	assert.Equal(t, "@ana", body.Participants[0]["display_name"])
	assert.Equal(t, "Bob", body.Participants[1]["display_name"])
	assert.EqualValues(t, 1, body.Participants[0]["telegram_user_id"])
}

func TestParticipantHandler_Stats(t *testing.T) {
	router, repo := newTestRouter(t, allowAll)
	seed(t, repo, models.Profile{TelegramUserID: 1, FirstName: "Ana"})

	w := do(router, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalParticipants":1,"totalAllParticipants":1}`, w.Body.String())
}

func TestParticipantHandler_Clear(t *testing.T) {
	router, repo := newTestRouter(t, allowAll)
	seed(t, repo,
		models.Profile{TelegramUserID: 1, FirstName: "Ana"},
		models.Profile{TelegramUserID: 2, FirstName: "Bob"},
	)

	w := do(router, http.MethodPost, "/api/participants/clear")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.ClearResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(2), body.Deleted)

	w = do(router, http.MethodGet, "/api/stats")
	assert.JSONEq(t, `{"totalParticipants":0,"totalAllParticipants":2}`, w.Body.String())
}

func TestParticipantHandler_RequiresAdmin(t *testing.T) {
	router, _ := newTestRouter(t, denyAll)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/participants"},
		{http.MethodGet, "/api/stats"},
		{http.MethodPost, "/api/participants/clear"},
	} {
		w := do(router, tc.method, tc.path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	}
}
