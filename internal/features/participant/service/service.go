package service

import (
	"context"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
)

type ParticipantService interface {
	List(ctx context.Context) ([]models.ParticipantResponse, error)
	Stats(ctx context.Context) (*models.Stats, error)
	Clear(ctx context.Context) (*models.ClearResponse, error)
}

type participantService struct {
	repo repository.ParticipantRepository
}

func NewParticipantService(repo repository.ParticipantRepository) ParticipantService {
	return &participantService{repo: repo}
}

// List возвращает участников текущего розыгрыша, старые первыми
func (s *participantService) List(ctx context.Context) ([]models.ParticipantResponse, error) {
	participants, err := s.repo.ListCurrent(ctx, repository.OldestFirst)
	if err != nil {
		return nil, errors.NewDatabaseError("list participants", err)
	}

	result := make([]models.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		result = append(result, models.ToResponse(p))
	}

	return result, nil
}

func (s *participantService) Stats(ctx context.Context) (*models.Stats, error) {
	current, err := s.repo.CountCurrent(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("count participants", err)
	}

	history, err := s.repo.CountHistory(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("count history participants", err)
	}

	return &models.Stats{
		TotalParticipants:    current,
		TotalAllParticipants: history,
	}, nil
}

// Clear очищает текущий розыгрыш, история остается
func (s *participantService) Clear(ctx context.Context) (*models.ClearResponse, error) {
	deleted, err := s.repo.ClearCurrent(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("clear participants", err)
	}

	logger.Info().
		Int64("deleted", deleted).
		Msg("Current draw cleared")

	return &models.ClearResponse{
		Success: true,
		Deleted: deleted,
		Message: "participants table cleared",
	}, nil
}
