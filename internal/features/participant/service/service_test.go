package service

import (
	"context"
	"errors"
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

func register(t *testing.T, repo repository.ParticipantRepository, p models.Profile) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.UpsertHistory(ctx, p, time.Now()))
	_, err := repo.InsertCurrentIfAbsent(ctx, p)
	require.NoError(t, err)
}

// failingRepository fails every call with err.
type failingRepository struct {
	repository.ParticipantRepository
	err error
}

func (f failingRepository) ListCurrent(context.Context, repository.SortOrder) ([]*models.Participant, error) {
	return nil, f.err
}

func (f failingRepository) CountCurrent(context.Context) (int64, error) { return 0, f.err }
func (f failingRepository) ClearCurrent(context.Context) (int64, error) { return 0, f.err }

func TestParticipantService_List(t *testing.T) {
	repo := newRepository(t)
	register(t, repo, models.Profile{TelegramUserID: 1, FirstName: "Ana", Username: "ana"})
	register(t, repo, models.Profile{TelegramUserID: 2, FirstName: "Bob", LastName: "Stone"})

	list, err := NewParticipantService(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "@ana", list[0].DisplayName)
	assert.Equal(t, "Bob Stone", list[1].DisplayName)
}

func TestParticipantService_ListEmpty(t *testing.T) {
	list, err := NewParticipantService(newRepository(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestParticipantService_StatsAndClear(t *testing.T) {
	repo := newRepository(t)
	svc := NewParticipantService(repo)
	ctx := context.Background()

	register(t, repo, models.Profile{TelegramUserID: 1, FirstName: "Ana"})
	register(t, repo, models.Profile{TelegramUserID: 2, FirstName: "Bob"})

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{TotalParticipants: 2, TotalAllParticipants: 2}, stats)

	cleared, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.True(t, cleared.Success)
	assert.Equal(t, int64(2), cleared.Deleted)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{TotalParticipants: 0, TotalAllParticipants: 2}, stats)
}

func TestParticipantService_StorageErrors(t *testing.T) {
	svc := NewParticipantService(failingRepository{err: errors.New("connection refused")})
	ctx := context.Background()

	_, err := svc.List(ctx)
	assertDatabaseError(t, err)

	_, err = svc.Stats(ctx)
	assertDatabaseError(t, err)

	_, err = svc.Clear(ctx)
	assertDatabaseError(t, err)
}

func assertDatabaseError(t *testing.T, err error) {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
}
