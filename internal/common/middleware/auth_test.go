package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testBotToken = "123456:TEST-TOKEN"

func init() {
	gin.SetMode(gin.TestMode)
}

// signInitData builds Mini App init data signed the way Telegram does.
func signInitData(token string, userID int64, authDate time.Time) string {
	values := map[string]string{
		"auth_date": strconv.FormatInt(authDate.Unix(), 10),
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      fmt.Sprintf(`{"id":%d,"first_name":"Admin","username":"admin"}`, userID),
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(token))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))

	q := url.Values{}
	for k, v := range values {
		q.Set(k, v)
	}
	q.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return q.Encode()
}

func newAuthRouter(cfg AdminAuthConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/admin", RequireAdmin(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(userIDKey)})
	})
	return router
}

func get(router *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	cfg := AdminAuthConfig{
		BotToken:    testBotToken,
		InitDataTTL: time.Hour,
		AdminIDs:    []int64{1001},
		APIKey:      "key-1",
	}
	router := newAuthRouter(cfg)
	now := time.Now()

	tests := []struct {
		name   string
		header map[string]string
		status int
	}{
		{"no credentials", nil, http.StatusUnauthorized},
		{"bearer key", map[string]string{"Authorization": "Bearer key-1"}, http.StatusOK},
		{"wrong bearer key", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"admin init data", map[string]string{"Authorization": "tma " + signInitData(testBotToken, 1001, now)}, http.StatusOK},
		{"admin init data header", map[string]string{initDataHeader: signInitData(testBotToken, 1001, now)}, http.StatusOK},
		{"not an admin", map[string]string{"Authorization": "tma " + signInitData(testBotToken, 2002, now)}, http.StatusForbidden},
		{"foreign bot token", map[string]string{"Authorization": "tma " + signInitData("999:OTHER", 1001, now)}, http.StatusUnauthorized},
		{"expired init data", map[string]string{"Authorization": "tma " + signInitData(testBotToken, 1001, now.Add(-2*time.Hour))}, http.StatusUnauthorized},
		{"unknown scheme", map[string]string{"Authorization": "Basic Zm9vOmJhcg=="}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.header)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRequireAdmin_SetsUserID(t *testing.T) {
	router := newAuthRouter(AdminAuthConfig{BotToken: testBotToken, InitDataTTL: time.Hour, AdminIDs: []int64{1001}})

	w := get(router, map[string]string{"Authorization": "tma " + signInitData(testBotToken, 1001, time.Now())})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":1001}`, w.Body.String())
}

func TestRequireAdmin_EmptyAPIKeyDisablesBearer(t *testing.T) {
	router := newAuthRouter(AdminAuthConfig{BotToken: testBotToken})

	w := get(router, map[string]string{"Authorization": "Bearer "})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_InitDataWithoutBotToken(t *testing.T) {
	router := newAuthRouter(AdminAuthConfig{AdminIDs: []int64{1001}})

	w := get(router, map[string]string{"Authorization": "tma " + signInitData(testBotToken, 1001, time.Now())})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
