package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
)

const (
	currentKey    = "participants:current"
	currentSeqKey = "participants:current:seq"
	historyKey    = "participants:history"
	historySeqKey = "participants:history:seq"

	// повторы только при гонке записей одного пользователя
	maxCASRetries = 32
)

type casResult int64

const (
	casMissing  casResult = -1
	casConflict casResult = 0
	casApplied  casResult = 1
)

// compareAndSetScript replaces one hash field only if it still holds ARGV[2].
// An empty ARGV[2] expects the field to be absent.
var compareAndSetScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], ARGV[1])
if current == false then
	if ARGV[2] ~= '' then
		return -1
	end
	redis.call('HSET', KEYS[1], ARGV[1], ARGV[3])
	return 1
end
if current ~= ARGV[2] then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[3])
return 1
`)

// Both sets are hashes keyed by telegram user ID holding JSON records.
type redisRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisRepository(client *redis.Client) repository.ParticipantRepository {
	return &redisRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *redisRepository) UpsertHistory(ctx context.Context, p models.Profile, at time.Time) error {
	field := strconv.FormatInt(p.TelegramUserID, 10)

	for i := 0; i < maxCASRetries; i++ {
		var record models.HistoryParticipant
		raw, err := r.client.HGet(ctx, historyKey, field).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			raw = nil
			id, err := r.client.Incr(ctx, historySeqKey).Result()
			if err != nil {
				return fmt.Errorf("allocate history id: %w", err)
			}
			record = models.HistoryParticipant{ID: id, TelegramUserID: p.TelegramUserID, CreatedAt: at}
		case err != nil:
			return fmt.Errorf("get history participant: %w", err)
		default:
			if err := json.Unmarshal(raw, &record); err != nil {
				return fmt.Errorf("decode history participant %s: %w", field, err)
			}
		}

		record.FirstName = p.FirstName
		record.LastName = p.LastName
		record.Username = p.Username
		record.LastParticipation = at

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		res, err := r.compareAndSet(ctx, historyKey, field, raw, data)
		if err != nil {
			return fmt.Errorf("upsert history participant: %w", err)
		}
		if res == casApplied {
			return nil
		}
	}

	return fmt.Errorf("upsert history participant %s: too many conflicts", field)
}

// InsertCurrentIfAbsent relies on HSETNX, so a concurrent duplicate never creates a second entry.
func (r *redisRepository) InsertCurrentIfAbsent(ctx context.Context, p models.Profile) (bool, error) {
	field := strconv.FormatInt(p.TelegramUserID, 10)

	exists, err := r.client.HExists(ctx, currentKey, field).Result()
	if err != nil {
		return false, fmt.Errorf("check participant: %w", err)
	}
	if exists {
		return false, nil
	}

	id, err := r.client.Incr(ctx, currentSeqKey).Result()
	if err != nil {
		return false, fmt.Errorf("allocate participant id: %w", err)
	}

	data, err := json.Marshal(models.Participant{
		ID:             id,
		TelegramUserID: p.TelegramUserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Username:       p.Username,
		CreatedAt:      r.now().UTC(),
	})
	if err != nil {
		return false, err
	}

	inserted, err := r.client.HSetNX(ctx, currentKey, field, data).Result()
	if err != nil {
		return false, fmt.Errorf("insert participant: %w", err)
	}

	return inserted, nil
}

func (r *redisRepository) UpdateCurrentNames(ctx context.Context, p models.Profile) error {
	field := strconv.FormatInt(p.TelegramUserID, 10)

	for i := 0; i < maxCASRetries; i++ {
		raw, err := r.client.HGet(ctx, currentKey, field).Bytes()
		if errors.Is(err, redis.Nil) {
			return repository.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get participant: %w", err)
		}

		var record models.Participant
		if err := json.Unmarshal(raw, &record); err != nil {
			return fmt.Errorf("decode participant %s: %w", field, err)
		}
		record.FirstName = p.FirstName
		record.LastName = p.LastName
		record.Username = p.Username

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		res, err := r.compareAndSet(ctx, currentKey, field, raw, data)
		if err != nil {
			return fmt.Errorf("update participant: %w", err)
		}
		switch res {
		case casApplied:
			return nil
		case casMissing:
			// удален очисткой между чтением и записью
			return repository.ErrNotFound
		}
	}

	return fmt.Errorf("update participant %s: too many conflicts", field)
}

func (r *redisRepository) ListCurrent(ctx context.Context, order repository.SortOrder) ([]*models.Participant, error) {
	values, err := r.client.HVals(ctx, currentKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(values))
	for _, v := range values {
		var p models.Participant
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			return nil, fmt.Errorf("decode participant: %w", err)
		}
		participants = append(participants, &p)
	}

	sort.Slice(participants, func(i, j int) bool {
		return less(participants[i].CreatedAt, participants[i].ID, participants[j].CreatedAt, participants[j].ID, order)
	})

	return participants, nil
}

func (r *redisRepository) ListHistory(ctx context.Context, order repository.SortOrder) ([]*models.HistoryParticipant, error) {
	values, err := r.client.HVals(ctx, historyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list history participants: %w", err)
	}

	participants := make([]*models.HistoryParticipant, 0, len(values))
	for _, v := range values {
		var p models.HistoryParticipant
		if err := json.Unmarshal([]byte(v), &p); err != nil {
			return nil, fmt.Errorf("decode history participant: %w", err)
		}
		participants = append(participants, &p)
	}

	sort.Slice(participants, func(i, j int) bool {
		return less(participants[i].CreatedAt, participants[i].ID, participants[j].CreatedAt, participants[j].ID, order)
	})

	return participants, nil
}

func (r *redisRepository) CountCurrent(ctx context.Context) (int64, error) {
	return r.client.HLen(ctx, currentKey).Result()
}

func (r *redisRepository) CountHistory(ctx context.Context) (int64, error) {
	return r.client.HLen(ctx, historyKey).Result()
}

func (r *redisRepository) ClearCurrent(ctx context.Context) (int64, error) {
	var count *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.HLen(ctx, currentKey)
		pipe.Del(ctx, currentKey)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("clear participants: %w", err)
	}

	return count.Val(), nil
}

func (r *redisRepository) compareAndSet(ctx context.Context, key, field string, old, value []byte) (casResult, error) {
	res, err := compareAndSetScript.Run(ctx, r.client, []string{key}, field, old, value).Int64()
	if err != nil {
		return casConflict, err
	}
	return casResult(res), nil
}

func less(ta time.Time, ida int64, tb time.Time, idb int64, order repository.SortOrder) bool {
	if order == repository.NewestFirst {
		ta, ida, tb, idb = tb, idb, ta, ida
	}
	if !ta.Equal(tb) {
		return ta.Before(tb)
	}
	return ida < idb
}
