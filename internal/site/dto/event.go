package dto

// SubmissionEvent is the message published to RabbitMQ after a form
// submission is persisted; the notification worker consumes it.
type SubmissionEvent struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}
