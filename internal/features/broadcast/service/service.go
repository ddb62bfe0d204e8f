package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/common/validation"
	"giveaway-wheel-backend/internal/features/participant/repository"
)

// Target selects the recipient set of a broadcast.
type Target string

const (
	TargetCurrent Target = "current"
	TargetHistory Target = "history"
)

// Sender is the part of the Telegram gateway used for fan-out.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string) error
}

type Config struct {
	// Пауза между отправками, чтобы не упереться в лимиты Telegram
	Delay         time.Duration
	PresetMessage string
	PresetPhoto   string
}

// Job is one broadcast request.
type Job struct {
	Target   Target
	Message  string
	PhotoURL string
}

// Result aggregates per-recipient outcomes.
// @Description Broadcast outcome
type Result struct {
	Success           bool   `json:"success" example:"true"`
	TotalParticipants int    `json:"totalParticipants" example:"12"`
	SuccessCount      int    `json:"successCount" example:"11"`
	FailCount         int    `json:"failCount" example:"1"`
	Message           string `json:"message" example:"messages sent to 11/12 participants"`
	HasPhoto          bool   `json:"hasPhoto" example:"false"`
}

type BroadcastService interface {
	Broadcast(ctx context.Context, job Job) (*Result, error)
	// Preset sends the configured message and photo to the current draw.
	Preset(ctx context.Context) (*Result, error)
}

type broadcastService struct {
	repo   repository.ParticipantRepository
	sender Sender
	cfg    Config
}

func NewBroadcastService(repo repository.ParticipantRepository, sender Sender, cfg Config) BroadcastService {
	return &broadcastService{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
	}
}

func (s *broadcastService) Preset(ctx context.Context) (*Result, error) {
	return s.Broadcast(ctx, Job{
		Target:   TargetCurrent,
		Message:  s.cfg.PresetMessage,
		PhotoURL: s.cfg.PresetPhoto,
	})
}

// Broadcast sends job to every recipient of the target set, newest first.
// A failed send is counted and never stops the run.
func (s *broadcastService) Broadcast(ctx context.Context, job Job) (*Result, error) {
	message := strings.TrimSpace(job.Message)
	photoURL := strings.TrimSpace(job.PhotoURL)
	hasPhoto := photoURL != ""

	if err := validation.ValidateBroadcastMessage(message, hasPhoto); err != nil {
		return nil, err
	}
	if err := validation.ValidatePhotoURL(photoURL); err != nil {
		return nil, err
	}

	recipients, err := s.recipients(ctx, job.Target)
	if err != nil {
		return nil, err
	}

	if len(recipients) == 0 {
		return &Result{
			Success:  false,
			Message:  "no participants found",
			HasPhoto: hasPhoto,
		}, nil
	}

	log := logger.With("broadcast")
	log.Info().
		Str("target", string(job.Target)).
		Int("recipients", len(recipients)).
		Bool("has_photo", hasPhoto).
		Msg("Broadcast started")

	result := &Result{
		Success:           true,
		TotalParticipants: len(recipients),
		HasPhoto:          hasPhoto,
	}

	for i, chatID := range recipients {
		if i > 0 && s.cfg.Delay > 0 {
			if err := sleep(ctx, s.cfg.Delay); err != nil {
				log.Warn().
					Int("sent", result.SuccessCount).
					Int("failed", result.FailCount).
					Msg("Broadcast interrupted")
				return nil, errors.Wrap(err, errors.ErrCodeInternal, "broadcast interrupted").
					WithDetail("success_count", result.SuccessCount).
					WithDetail("fail_count", result.FailCount)
			}
		}

		if hasPhoto {
			err = s.sender.SendPhoto(ctx, chatID, photoURL, message)
		} else {
			err = s.sender.SendMessage(ctx, chatID, message)
		}

		if err != nil {
			result.FailCount++
			log.Warn().Err(err).
				Int64("chat_id", chatID).
				Msg("Broadcast send failed")
			continue
		}
		result.SuccessCount++
	}

	result.Message = fmt.Sprintf("messages sent to %d/%d participants", result.SuccessCount, result.TotalParticipants)

	log.Info().
		Str("target", string(job.Target)).
		Int("success", result.SuccessCount).
		Int("failed", result.FailCount).
		Msg("Broadcast finished")

	return result, nil
}

// recipients returns chat IDs of the target set, newest first.
func (s *broadcastService) recipients(ctx context.Context, target Target) ([]int64, error) {
	switch target {
	case TargetCurrent:
		list, err := s.repo.ListCurrent(ctx, repository.NewestFirst)
		if err != nil {
			return nil, errors.NewDatabaseError("list participants", err)
		}
		ids := make([]int64, 0, len(list))
		for _, p := range list {
			ids = append(ids, p.TelegramUserID)
		}
		return ids, nil

	case TargetHistory:
		list, err := s.repo.ListHistory(ctx, repository.NewestFirst)
		if err != nil {
			return nil, errors.NewDatabaseError("list history participants", err)
		}
		ids := make([]int64, 0, len(list))
		for _, p := range list {
			ids = append(ids, p.TelegramUserID)
		}
		return ids, nil
	}

	return nil, errors.NewValidationError("target", fmt.Sprintf("unknown broadcast target %q", target))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
