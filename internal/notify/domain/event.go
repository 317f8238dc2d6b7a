package domain

import "time"

// Submission kinds accepted from the queue
const (
	KindContact        = "contact"
	KindSubscriber     = "subscriber"
	KindJobApplication = "job_application"
)

// EventMessage is a submission event taken off the queue, paired with its
// delivery tag for ack/nack.
type EventMessage struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	DeliveryTag uint64 `json:"-"`
}

// Submission is the slice of a stored submission the notifier needs
type Submission struct {
	Kind       string
	ID         string
	Email      string
	Summary    string
	ReceivedAt time.Time
}
