// Package notify consumes submission events from RabbitMQ and delivers the
// admin notification for each persisted form submission.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/craftline/website-be/internal/notify/domain"
	"github.com/craftline/website-be/shared/rabbitmq"
	"github.com/google/uuid"
)

// SubmissionStore loads and stamps submissions for notification
type SubmissionStore interface {
	GetSubmission(ctx context.Context, kind, id string) (*domain.Submission, error)
	MarkNotified(ctx context.Context, kind, id string) error
}

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	Storage       SubmissionStore
	RabbitClient  *rabbitmq.Client
	Notifier      Notifier
	Concurrency   int
	HandleTimeout time.Duration
	PrefetchCount int
}

// Worker consumes submission events and processes them on a bounded pool
type Worker struct {
	logger        *slog.Logger
	storage       SubmissionStore
	rabbitClient  *rabbitmq.Client
	notifier      Notifier
	concurrency   int
	handleTimeout time.Duration
	prefetchCount int
	workerID      string

	eventsChan chan *domain.EventMessage
	wg         sync.WaitGroup
	stopChan   chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		storage:       cfg.Storage,
		rabbitClient:  cfg.RabbitClient,
		notifier:      cfg.Notifier,
		concurrency:   cfg.Concurrency,
		handleTimeout: cfg.HandleTimeout,
		prefetchCount: cfg.PrefetchCount,
		workerID:      fmt.Sprintf("notify-%s", uuid.New().String()[:8]),
		eventsChan:    make(chan *domain.EventMessage),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming and processing submission events. It blocks until
// the context is canceled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting notification worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("handle_timeout", w.handleTimeout),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	w.spawnPool(ctx)
	w.dispatch(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping notification worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Notification worker stopped")
}
