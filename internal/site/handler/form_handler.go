package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/craftline/website-be/internal/site/dto"
	"github.com/craftline/website-be/internal/site/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitContact handles POST /api/contact
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid contact request", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg := model.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := h.storage.CreateContactMessage(c.Request.Context(), &msg); err != nil {
		h.logger.Error("Failed to store contact message", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	h.publishEvent(c, model.KindContact, msg.ID)
	respondCreated(c, "Thank you for your message, we will get back to you soon")
}

// SubmitSubscribe handles POST /api/subscribe
func (h *FormHandler) SubmitSubscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid subscribe request", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sub := model.Subscriber{
		ID:        uuid.New().String(),
		Email:     req.Email,
		CreatedAt: time.Now(),
	}

	created, err := h.storage.CreateSubscriber(c.Request.Context(), &sub)
	if err != nil {
		h.logger.Error("Failed to store subscriber", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	if !created {
		respondCreated(c, "You are already subscribed")
		return
	}

	h.publishEvent(c, model.KindSubscriber, sub.ID)
	respondCreated(c, "Thank you for subscribing")
}

// SubmitJobApplication handles POST /api/job-application
func (h *FormHandler) SubmitJobApplication(c *gin.Context) {
	var req dto.JobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid job application request", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	app := model.JobApplication{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		ResumeURL: req.ResumeURL,
		CreatedAt: time.Now(),
	}

	if err := h.storage.CreateJobApplication(c.Request.Context(), &app); err != nil {
		h.logger.Error("Failed to store job application", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	h.publishEvent(c, model.KindJobApplication, app.ID)
	respondCreated(c, "Thank you for applying, we will review your application")
}

// publishEvent queues a submission event for the notification worker.
// Notification is best-effort: a publish failure is logged, never
// surfaced to the visitor.
func (h *FormHandler) publishEvent(c *gin.Context, kind, id string) {
	event := dto.SubmissionEvent{Kind: kind, ID: id}

	body, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode submission event",
			slog.String("kind", kind),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.publisher.PublishWithRetry(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Error("Failed to publish submission event",
			slog.String("kind", kind),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return
	}

	h.logger.Debug("Submission event published",
		slog.String("kind", kind),
		slog.String("id", id),
	)
}
