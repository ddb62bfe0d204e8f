package service

import (
	"context"
	stderrors "errors"
	"html"
	"strings"
	"time"

	tgmodels "github.com/go-telegram/bot/models"

	"giveaway-wheel-backend/internal/common/errors"
	"giveaway-wheel-backend/internal/common/logger"
	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
)

// Keyword is the registration trigger, compared after trim and lower-casing.
const Keyword = "go"

// Notifier is the part of the Telegram gateway used for confirmation replies.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string) error
}

// Messages are the reply templates. "%s" is replaced with the sender's first name.
type Messages struct {
	Registered         string
	AlreadyRegistered  string
	RegistrationFailed string
	// Фото к подтверждению регистрации, пустое значение отправляет только текст
	PhotoURL string
}

// Result describes what happened to one inbound update.
type Result struct {
	// Handled is false for updates without the keyword
	Handled          bool
	IsNewParticipant bool
	UserID           int64
}

type RegistrationService interface {
	Register(ctx context.Context, update *tgmodels.Update) (*Result, error)
}

type registrationService struct {
	repo     repository.ParticipantRepository
	notifier Notifier
	messages Messages
	now      func() time.Time
}

func NewRegistrationService(repo repository.ParticipantRepository, notifier Notifier, messages Messages) RegistrationService {
	return &registrationService{
		repo:     repo,
		notifier: notifier,
		messages: messages,
		now:      time.Now,
	}
}

// Register applies the registration state transition for one update.
// Only a current-draw storage failure is returned as an error.
func (s *registrationService) Register(ctx context.Context, update *tgmodels.Update) (*Result, error) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return &Result{}, nil
	}

	if strings.ToLower(strings.TrimSpace(msg.Text)) != Keyword {
		return &Result{}, nil
	}

	profile := models.Profile{
		TelegramUserID: msg.From.ID,
		FirstName:      msg.From.FirstName,
		LastName:       msg.From.LastName,
		Username:       msg.From.Username,
	}
	chatID := msg.Chat.ID

	log := logger.With("registration")
	log.Info().
		Int64("user_id", profile.TelegramUserID).
		Int64("chat_id", chatID).
		Msg("Registration keyword received")

	if err := s.repo.UpsertHistory(ctx, profile, s.now().UTC()); err != nil {
		log.Error().Err(err).
			Int64("user_id", profile.TelegramUserID).
			Msg("Failed to upsert history participant")
	}

	inserted, err := s.repo.InsertCurrentIfAbsent(ctx, profile)
	if stderrors.Is(err, repository.ErrAlreadyExists) {
		inserted, err = false, nil
	}
	if err != nil {
		s.notify(ctx, chatID, s.render(s.messages.RegistrationFailed, profile.FirstName), "")
		return nil, errors.NewDatabaseError("register participant", err).
			WithDetail("user_id", profile.TelegramUserID)
	}

	result := &Result{
		Handled:          true,
		IsNewParticipant: inserted,
		UserID:           profile.TelegramUserID,
	}

	if !inserted {
		if err := s.repo.UpdateCurrentNames(ctx, profile); err != nil {
			log.Warn().Err(err).
				Int64("user_id", profile.TelegramUserID).
				Msg("Failed to refresh participant names")
		}
		s.notify(ctx, chatID, s.render(s.messages.AlreadyRegistered, profile.FirstName), "")
		return result, nil
	}

	log.Info().
		Int64("user_id", profile.TelegramUserID).
		Msg("New participant registered")

	s.notify(ctx, chatID, s.render(s.messages.Registered, profile.FirstName), strings.TrimSpace(s.messages.PhotoURL))
	return result, nil
}

// notify sends the reply and only logs failures.
func (s *registrationService) notify(ctx context.Context, chatID int64, text, photoURL string) {
	var err error
	if photoURL != "" {
		err = s.notifier.SendPhoto(ctx, chatID, photoURL, text)
	} else {
		err = s.notifier.SendMessage(ctx, chatID, text)
	}

	if err != nil {
		logger.Warn().Err(err).
			Int64("chat_id", chatID).
			Bool("with_photo", photoURL != "").
			Msg("Failed to send registration reply")
	}
}

func (s *registrationService) render(template, firstName string) string {
	return strings.Replace(template, "%s", html.EscapeString(firstName), 1)
}
