package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/craftline/website-be/internal/notify/domain"
)

// spawnPool spawns the configured number of processing goroutines
func (w *Worker) spawnPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.poolLoop(ctx, i)
	}
}

// poolLoop is the processing loop of one pool goroutine
func (w *Worker) poolLoop(ctx context.Context, poolNum int) {
	defer w.wg.Done()

	name := fmt.Sprintf("%s-%d", w.workerID, poolNum)
	w.logger.Info("Pool goroutine started",
		slog.String("name", name),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Pool goroutine stopping",
				slog.String("name", name),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Pool goroutine stopping - context canceled",
				slog.String("name", name),
			)
			return

		case event, ok := <-w.eventsChan:
			if !ok {
				return
			}

			err := w.processEvent(ctx, event)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("name", name),
					slog.String("id", event.ID),
				)
				continue
			}

			if err != nil {
				w.logger.Error("Event processing failed",
					slog.String("name", name),
					slog.String("kind", event.Kind),
					slog.String("id", event.ID),
					slog.String("error", err.Error()),
				)

				requeue := shouldRequeue(err)
				if nackErr := channel.Nack(event.DeliveryTag, false, requeue); nackErr != nil {
					w.logger.Error("Failed to NACK event",
						slog.String("name", name),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(event.DeliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK event",
					slog.String("name", name),
					slog.String("error", ackErr.Error()),
				)
			}
		}
	}
}

// shouldRequeue reports whether a failed event should go back on the queue
func shouldRequeue(err error) bool {
	var retryable *domain.RetryableError
	return errors.As(err, &retryable)
}
