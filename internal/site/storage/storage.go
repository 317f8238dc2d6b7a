package storage

import (
	"context"
	"fmt"

	"github.com/craftline/website-be/internal/site/model"
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

func (s *Storage) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (
			id, name, email, subject, message, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

// CreateSubscriber inserts a subscriber and reports whether a row was
// actually created; a duplicate email is absorbed by ON CONFLICT.
func (s *Storage) CreateSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error) {
	query := `
		INSERT INTO subscribers (
			id, email, created_at
		) VALUES (
			$1, $2, $3
		)
		ON CONFLICT (email) DO NOTHING
	`

	res, err := s.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.Email,
		sub.CreatedAt,
	)

	if err != nil {
		return false, fmt.Errorf("failed to create subscriber: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check subscriber insert: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) CreateJobApplication(ctx context.Context, app *model.JobApplication) error {
	query := `
		INSERT INTO job_applications (
			id, name, email, phone, position, resume_url, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.Position,
		app.ResumeURL,
		app.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job application: %w", err)
	}

	return nil
}
