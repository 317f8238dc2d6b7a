package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/craftline/website-be/internal/notify/domain"
)

// Notifier delivers an admin notification for one submission
type Notifier interface {
	Notify(ctx context.Context, submission *domain.Submission) error
}

// LogNotifier writes notifications to the structured log. It stands in for
// a mail integration, which is deliberately out of scope.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the composed notification
func (n *LogNotifier) Notify(_ context.Context, submission *domain.Submission) error {
	n.logger.Info("New website submission",
		slog.String("notification", composeNotification(submission)),
		slog.String("kind", submission.Kind),
		slog.String("id", submission.ID),
	)
	return nil
}

// composeNotification builds the one-line admin notification text
func composeNotification(s *domain.Submission) string {
	var what string
	switch s.Kind {
	case domain.KindContact:
		what = fmt.Sprintf("contact message %q", s.Summary)
	case domain.KindSubscriber:
		what = "newsletter subscription"
	case domain.KindJobApplication:
		what = fmt.Sprintf("job application for %q", s.Summary)
	default:
		what = "submission"
	}

	return fmt.Sprintf("New %s from %s, received %s",
		what, s.Email, s.ReceivedAt.Format(time.RFC3339))
}
