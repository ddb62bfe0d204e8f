package repository

import (
	"context"
	"errors"
	"time"

	"giveaway-wheel-backend/internal/features/participant/models"
)

var (
	ErrNotFound = errors.New("participant not found")
	// ErrAlreadyExists is a uniqueness conflict on telegram_user_id
	ErrAlreadyExists = errors.New("participant already exists")
)

type SortOrder int

const (
	OldestFirst SortOrder = iota
	NewestFirst
)

// ParticipantRepository stores the current-draw set and the all-time history set.
type ParticipantRepository interface {
	// UpsertHistory creates or refreshes the history record and sets its last participation.
	UpsertHistory(ctx context.Context, profile models.Profile, at time.Time) error

	// InsertCurrentIfAbsent adds the profile to the current draw. It reports
	// false when the user is already registered.
	InsertCurrentIfAbsent(ctx context.Context, profile models.Profile) (bool, error)
	UpdateCurrentNames(ctx context.Context, profile models.Profile) error

	ListCurrent(ctx context.Context, order SortOrder) ([]*models.Participant, error)
	ListHistory(ctx context.Context, order SortOrder) ([]*models.HistoryParticipant, error)
	CountCurrent(ctx context.Context) (int64, error)
	CountHistory(ctx context.Context) (int64, error)

	// ClearCurrent removes every current-draw row and returns how many were deleted.
	ClearCurrent(ctx context.Context) (int64, error)
}
