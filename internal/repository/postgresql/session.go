package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/mindgarden/counseling-backend-go/internal/domain/session"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.Repository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) ListCompleted(ctx context.Context, consultantID string, from, to time.Time) ([]session.Session, error) {
	q := GetQuerier(ctx, r.db)

	// to bounds the range by calendar day, so a session at any time on the
	// last work day still counts.
	query := `
		SELECT id, consultant_id, client_id, consultation_type, session_date, duration_minutes,
			status, created_at, updated_at
		FROM counseling_sessions
		WHERE consultant_id = $1 AND status = $2
			AND session_date >= $3 AND session_date < $4 + INTERVAL '1 day'
		ORDER BY session_date
	`

	rows, err := q.Query(ctx, query, consultantID, session.StatusCompleted, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(
			&s.ID, &s.ConsultantID, &s.ClientID, &s.ConsultationType, &s.Date, &s.DurationMinutes,
			&s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
