package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"giveaway-wheel-backend/internal/features/participant/models"
	"giveaway-wheel-backend/internal/features/participant/repository"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) repository.ParticipantRepository {
	return &postgresRepository{db: db}
}

// UpsertHistory создает или обновляет запись в all_participants
func (r *postgresRepository) UpsertHistory(ctx context.Context, p models.Profile, at time.Time) error {
	query := `
		INSERT INTO all_participants (telegram_user_id, first_name, last_name, username, created_at, last_participation)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $5)
		ON CONFLICT (telegram_user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			last_participation = EXCLUDED.last_participation
	`

	if _, err := r.db.ExecContext(ctx, query, p.TelegramUserID, p.FirstName, p.LastName, p.Username, at); err != nil {
		return fmt.Errorf("failed to upsert history participant: %w", err)
	}

	return nil
}

// InsertCurrentIfAbsent добавляет участника текущего розыгрыша, конфликт по telegram_user_id не ошибка
func (r *postgresRepository) InsertCurrentIfAbsent(ctx context.Context, p models.Profile) (bool, error) {
	query := `
		INSERT INTO participants (telegram_user_id, first_name, last_name, username)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (telegram_user_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query, p.TelegramUserID, p.FirstName, p.LastName, p.Username)
	if err != nil {
		return false, mapError("insert participant", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows == 1, nil
}

func (r *postgresRepository) UpdateCurrentNames(ctx context.Context, p models.Profile) error {
	query := `
		UPDATE participants
		SET first_name = $2, last_name = NULLIF($3, ''), username = NULLIF($4, '')
		WHERE telegram_user_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, p.TelegramUserID, p.FirstName, p.LastName, p.Username)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *postgresRepository) ListCurrent(ctx context.Context, order repository.SortOrder) ([]*models.Participant, error) {
	query := `
		SELECT id, telegram_user_id, first_name,
			COALESCE(last_name, '') AS last_name,
			COALESCE(username, '') AS username,
			created_at
		FROM participants
		ORDER BY ` + orderBy(order)

	participants := []*models.Participant{}
	if err := r.db.SelectContext(ctx, &participants, query); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return participants, nil
}

func (r *postgresRepository) ListHistory(ctx context.Context, order repository.SortOrder) ([]*models.HistoryParticipant, error) {
	query := `
		SELECT id, telegram_user_id, first_name,
			COALESCE(last_name, '') AS last_name,
			COALESCE(username, '') AS username,
			created_at, last_participation
		FROM all_participants
		ORDER BY ` + orderBy(order)

	participants := []*models.HistoryParticipant{}
	if err := r.db.SelectContext(ctx, &participants, query); err != nil {
		return nil, fmt.Errorf("failed to list history participants: %w", err)
	}

	return participants, nil
}

func (r *postgresRepository) CountCurrent(ctx context.Context) (int64, error) {
	return r.count(ctx, "participants")
}

func (r *postgresRepository) CountHistory(ctx context.Context) (int64, error) {
	return r.count(ctx, "all_participants")
}

// ClearCurrent очищает только participants, история не затрагивается
func (r *postgresRepository) ClearCurrent(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM participants`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear participants: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}

func (r *postgresRepository) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+table); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func orderBy(order repository.SortOrder) string {
	if order == repository.NewestFirst {
		return "created_at DESC, id DESC"
	}
	return "created_at ASC, id ASC"
}

func mapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, repository.ErrAlreadyExists)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
