package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "giveaway-wheel-backend/internal/common/errors"
	redisrepo "giveaway-wheel-backend/internal/features/photo/repository/redis"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

func newService(t *testing.T, maxSize int64) (*photoService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewPhotoService(redisrepo.NewPhotoRepository(client), Config{
		PublicBaseURL: "https://giveaway.example.com/",
		TTL:           time.Hour,
		MaxSize:       maxSize,
	}).(*photoService)
	svc.now = func() time.Time { return time.UnixMilli(1710000000000) }

	return svc, mr
}

func TestPhotoService_UploadAndGet(t *testing.T) {
	svc, mr := newService(t, 1024)
	ctx := context.Background()

	result, err := svc.Upload(ctx, Upload{FileName: "promo.PNG", ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "image/png", result.Type)
	assert.Equal(t, int64(len(pngBytes)), result.Size)
	assert.True(t, strings.HasPrefix(result.FileName, "1710000000000-"))
	assert.True(t, strings.HasSuffix(result.FileName, ".png"))
	assert.Equal(t, "https://giveaway.example.com/photos/"+result.FileName, result.URL)
	assert.Equal(t, time.Hour, mr.TTL("photo:"+result.FileName))

	photo, err := svc.Get(ctx, result.FileName)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, photo.Data)
	assert.Equal(t, "image/png", photo.ContentType)
}

func TestPhotoService_UniqueNames(t *testing.T) {
	svc, _ := newService(t, 1024)

	a, err := svc.Upload(context.Background(), Upload{ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)
	b, err := svc.Upload(context.Background(), Upload{ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)

	assert.NotEqual(t, a.FileName, b.FileName)
}

func TestPhotoService_Rejects(t *testing.T) {
	svc, _ := newService(t, 64)

	tests := []struct {
		name   string
		upload Upload
	}{
		{"declared non-image", Upload{ContentType: "application/pdf", Data: pngBytes}},
		{"content not an image", Upload{ContentType: "image/png", Data: []byte("just some text, not pixels")}},
		{"too large", Upload{ContentType: "image/png", Data: append(pngBytes, bytes.Repeat([]byte{0}, 64)...)}},
		{"empty", Upload{ContentType: "image/png"}},
		{"svg", Upload{ContentType: "image/svg+xml", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)}},
		{"svg declared as png", Upload{ContentType: "image/png", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tt.upload)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.True(t, appErr.IsValidation())
		})
	}
}

func TestPhotoService_GetUnknown(t *testing.T) {
	svc, _ := newService(t, 1024)

	for _, name := range []string{"1710000000000-00000000-0000-0000-0000-000000000000.png", "../etc/passwd", ""} {
		_, err := svc.Get(context.Background(), name)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, name)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	}
}
