package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"giveaway-wheel-backend/internal/features/photo/models"
	"giveaway-wheel-backend/internal/features/photo/repository"
)

const (
	keyPrefix = "photo:"

	fieldContentType = "content_type"
	fieldData        = "data"
)

type photoRepository struct {
	client *redis.Client
}

func NewPhotoRepository(client *redis.Client) repository.PhotoRepository {
	return &photoRepository{
		client: client,
	}
}

func (r *photoRepository) Save(ctx context.Context, photo *models.Photo, ttl time.Duration) error {
	key := keyPrefix + photo.Name

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldContentType, photo.ContentType, fieldData, photo.Data)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save photo %s: %w", photo.Name, err)
	}

	return nil
}

func (r *photoRepository) Get(ctx context.Context, name string) (*models.Photo, error) {
	values, err := r.client.HMGet(ctx, keyPrefix+name, fieldContentType, fieldData).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get photo %s: %w", name, err)
	}

	contentType, _ := values[0].(string)
	data, _ := values[1].(string)
	if contentType == "" || data == "" {
		return nil, repository.ErrNotFound
	}

	return &models.Photo{
		Name:        name,
		ContentType: contentType,
		Data:        []byte(data),
	}, nil
}
