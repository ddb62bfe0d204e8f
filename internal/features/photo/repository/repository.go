package repository

import (
	"context"
	"errors"
	"time"

	"giveaway-wheel-backend/internal/features/photo/models"
)

var ErrNotFound = errors.New("photo not found")

type PhotoRepository interface {
	// Save stores the photo under its name. A zero ttl keeps it forever.
	Save(ctx context.Context, photo *models.Photo, ttl time.Duration) error
	Get(ctx context.Context, name string) (*models.Photo, error)
}
