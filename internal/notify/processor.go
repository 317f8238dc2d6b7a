package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/craftline/website-be/internal/notify/domain"
)

// processEvent handles one submission event: load the submission, deliver
// the notification, stamp notified_at. The returned error drives the
// ack/nack decision in the pool loop.
func (w *Worker) processEvent(ctx context.Context, event *domain.EventMessage) error {
	w.logger.Info("Processing submission event",
		slog.String("kind", event.Kind),
		slog.String("id", event.ID),
	)

	ctx, cancel := context.WithTimeout(ctx, w.handleTimeout)
	defer cancel()

	submission, err := w.storage.GetSubmission(ctx, event.Kind, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) || errors.Is(err, domain.ErrUnknownKind) {
			// Nothing to notify about; dropping is correct
			return err
		}
		// Database errors could be transient
		return domain.NewRetryableError(fmt.Errorf("failed to load submission: %w", err))
	}

	if err := w.notifier.Notify(ctx, submission); err != nil {
		return domain.NewRetryableError(fmt.Errorf("failed to deliver notification: %w", err))
	}

	// Notification went out; a failed stamp is logged but does not requeue,
	// or the admin would be notified twice
	if err := w.storage.MarkNotified(ctx, event.Kind, event.ID); err != nil {
		w.logger.Warn("Failed to mark submission notified",
			slog.String("kind", event.Kind),
			slog.String("id", event.ID),
			slog.String("error", err.Error()),
		)
	}

	w.logger.Info("Submission event processed",
		slog.String("kind", event.Kind),
		slog.String("id", event.ID),
	)

	return nil
}
