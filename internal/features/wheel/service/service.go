package service

import (
	"context"
	"time"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
	"giveaway-wheel-backend/internal/utils/random"
)

// SpinResponse carries what the dashboard needs to animate the draw.
// @Description Wheel spin outcome
type SpinResponse struct {
	Rotation     float64                    `json:"rotation" example:"2371.5"`
	FinalAngle   float64                    `json:"finalAngle" example:"211.5"`
	SegmentAngle float64                    `json:"segmentAngle" example:"90"`
	WinnerIndex  int                        `json:"winnerIndex" example:"1"`
	Winner       models.ParticipantResponse `json:"winner"`
	DurationMs   int64                      `json:"durationMs" example:"4000"`
}

type WheelService interface {
	Spin(ctx context.Context, from float64) (*SpinResponse, error)
}

type wheelService struct {
	repo      repository.ParticipantRepository
	src       random.Source
	animation time.Duration
}

// NewWheelService builds the service. A nil src uses random.CryptoSource.
func NewWheelService(repo repository.ParticipantRepository, src random.Source, animation time.Duration) WheelService {
	if src == nil {
		src = random.CryptoSource{}
	}
	return &wheelService{
		repo:      repo,
		src:       src,
		animation: animation,
	}
}

// Spin draws a winner among the current participants, in the order the
// dashboard lists them.
func (s *wheelService) Spin(ctx context.Context, from float64) (*SpinResponse, error) {
	participants, err := s.repo.ListCurrent(ctx, repository.OldestFirst)
	if err != nil {
		return nil, errors.NewDatabaseError("list participants", err)
	}

	spin, err := SpinWheel(s.src, len(participants), from)
	if err != nil {
		return nil, err
	}

	winner := participants[spin.WinnerIndex]
	logger.Info().
		Int("participants", len(participants)).
		Int("winner_index", spin.WinnerIndex).
		Int64("winner_id", winner.TelegramUserID).
		Float64("final_angle", spin.FinalAngle).
		Msg("Wheel spun")

	return &SpinResponse{
		Rotation:     spin.Rotation,
		FinalAngle:   spin.FinalAngle,
		SegmentAngle: spin.SegmentAngle,
		WinnerIndex:  spin.WinnerIndex,
		Winner:       models.ToResponse(winner),
		DurationMs:   s.animation.Milliseconds(),
	}, nil
}
