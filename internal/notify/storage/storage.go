package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/craftline/website-be/internal/notify/domain"
	"github.com/craftline/website-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// GetSubmission loads the submission an event refers to, reduced to what
// the notifier needs.
func (s *Storage) GetSubmission(ctx context.Context, kind, id string) (*domain.Submission, error) {
	var query string
	switch kind {
	case domain.KindContact:
		query = `
			SELECT email, subject AS summary, created_at
			FROM contact_messages
			WHERE id = $1
		`
	case domain.KindSubscriber:
		query = `
			SELECT email, 'newsletter subscription' AS summary, created_at
			FROM subscribers
			WHERE id = $1
		`
	case domain.KindJobApplication:
		query = `
			SELECT email, position AS summary, created_at
			FROM job_applications
			WHERE id = $1
		`
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	var row struct {
		Email     string    `db:"email"`
		Summary   string    `db:"summary"`
		CreatedAt time.Time `db:"created_at"`
	}

	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrSubmissionNotFound, kind, id)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &domain.Submission{
		Kind:       kind,
		ID:         id,
		Email:      row.Email,
		Summary:    row.Summary,
		ReceivedAt: row.CreatedAt,
	}, nil
}

// MarkNotified stamps the submission's notified_at
func (s *Storage) MarkNotified(ctx context.Context, kind, id string) error {
	var table string
	switch kind {
	case domain.KindContact:
		table = "contact_messages"
	case domain.KindSubscriber:
		table = "subscribers"
	case domain.KindJobApplication:
		table = "job_applications"
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	query := fmt.Sprintf("UPDATE %s SET notified_at = $1 WHERE id = $2", table)

	if _, err := s.db.ExecContext(ctx, query, time.Now(), id); err != nil {
		return fmt.Errorf("failed to mark submission notified: %w", err)
	}

	return nil
}
