package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
	redisrepo "giveaway-wheel-backend/internal/features/participant/repository/redis"
)

func newRepository(t *testing.T) repository.ParticipantRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisrepo.NewRedisRepository(client)
}

func TestWheelService_Spin(t *testing.T) {
	repo := newRepository(t)
	for _, id := range []int64{1, 2, 3} {
		_, err := repo.InsertCurrentIfAbsent(context.Background(), models.Profile{TelegramUserID: id, FirstName: "P"})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	svc := NewWheelService(repo, rand.New(rand.NewPCG(7, 7)), 4*time.Second)
	result, err := svc.Spin(context.Background(), 0)
	require.NoError(t, err)

	list, err := repo.ListCurrent(context.Background(), repository.OldestFirst)
	require.NoError(t, err)

	assert.Equal(t, list[result.WinnerIndex].TelegramUserID, result.Winner.TelegramUserID)
	assert.Equal(t, int64(4000), result.DurationMs)
	assert.InDelta(t, 120.0, result.SegmentAngle, 1e-9)

	idx, err := SelectWinner(result.FinalAngle, 3)
	require.NoError(t, err)
	assert.Equal(t, idx, result.WinnerIndex)
}

func TestWheelService_NoParticipants(t *testing.T) {
	_, err := NewWheelService(newRepository(t), nil, time.Second).Spin(context.Background(), 0)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsValidation())
}
