package models

import (
	"strings"
	"time"
)

// Participant is a registrant of the current draw. Rows are cleared between draws.
// @Description Current-draw participant
type Participant struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	TelegramUserID int64     `json:"telegram_user_id" db:"telegram_user_id" example:"123456789"`
	FirstName      string    `json:"first_name" db:"first_name" example:"Ana"`
	LastName       string    `json:"last_name,omitempty" db:"last_name" example:"Doe"`
	Username       string    `json:"username,omitempty" db:"username" example:"ana"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" example:"2024-03-15T14:30:00Z"`
}

// DisplayName is "@username" when a handle is known, else "first [last]".
func (p *Participant) DisplayName() string {
	return displayName(p.FirstName, p.LastName, p.Username)
}

// HistoryParticipant is the all-time record of a registrant. It is upserted on
// every registration and never cleared.
// @Description All-time participant
type HistoryParticipant struct {
	ID                int64     `json:"id" db:"id" example:"1"`
	TelegramUserID    int64     `json:"telegram_user_id" db:"telegram_user_id" example:"123456789"`
	FirstName         string    `json:"first_name" db:"first_name" example:"Ana"`
	LastName          string    `json:"last_name,omitempty" db:"last_name"`
	Username          string    `json:"username,omitempty" db:"username"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	LastParticipation time.Time `json:"last_participation" db:"last_participation"`
}

func (p *HistoryParticipant) DisplayName() string {
	return displayName(p.FirstName, p.LastName, p.Username)
}

// ParticipantResponse is a Participant with its display name.
// @Description Participant as returned by the admin API
type ParticipantResponse struct {
	Participant
	DisplayName string `json:"display_name" example:"@ana"`
}

// ParticipantsResponse wraps the participant list.
type ParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// Stats holds the sizes of both participant sets.
// @Description Participant counters
type Stats struct {
	TotalParticipants    int64 `json:"totalParticipants" example:"12"`
	TotalAllParticipants int64 `json:"totalAllParticipants" example:"340"`
}

// ClearResponse is returned after the current draw was emptied.
type ClearResponse struct {
	Success bool   `json:"success" example:"true"`
	Deleted int64  `json:"deleted" example:"12"`
	Message string `json:"message" example:"participants table cleared"`
}

func ToResponse(p *Participant) ParticipantResponse {
	return ParticipantResponse{Participant: *p, DisplayName: p.DisplayName()}
}

func displayName(first, last, username string) string {
	if username != "" {
		return "@" + username
	}
	if last != "" {
		return strings.TrimSpace(first + " " + last)
	}
	return first
}

// Profile is the sender identity taken from an inbound message.
type Profile struct {
	TelegramUserID int64
	FirstName      string
	LastName       string
	Username       string
}
