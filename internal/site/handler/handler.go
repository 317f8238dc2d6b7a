package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/craftline/website-be/internal/site/model"
	"github.com/gin-gonic/gin"
)

// SubmissionStore persists form submissions. Implemented by
// internal/site/storage over PostgreSQL.
type SubmissionStore interface {
	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error
	CreateSubscriber(ctx context.Context, sub *model.Subscriber) (bool, error)
	CreateJobApplication(ctx context.Context, app *model.JobApplication) error
}

// EventPublisher publishes submission events for the notification worker.
// Implemented by shared/rabbitmq.Client.
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, body []byte, contentType string) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Storage   SubmissionStore
	Publisher EventPublisher
}

// FormHandler handles the public form submission endpoints
type FormHandler struct {
	logger    *slog.Logger
	storage   SubmissionStore
	publisher EventPublisher
}

// NewFormHandler creates a new FormHandler instance
func NewFormHandler(deps *Dependencies) *FormHandler {
	return &FormHandler{
		logger:    deps.Logger,
		storage:   deps.Storage,
		publisher: deps.Publisher,
	}
}

func respondCreated(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
