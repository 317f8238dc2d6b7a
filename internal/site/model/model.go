package model

import (
	"database/sql"
	"time"
)

// Submission kinds, shared with the notification worker via event payloads
const (
	KindContact        = "contact"
	KindSubscriber     = "subscriber"
	KindJobApplication = "job_application"
)

// ContactMessage is a row in contact_messages
type ContactMessage struct {
	ID         string       `db:"id"`
	Name       string       `db:"name"`
	Email      string       `db:"email"`
	Subject    string       `db:"subject"`
	Message    string       `db:"message"`
	CreatedAt  time.Time    `db:"created_at"`
	NotifiedAt sql.NullTime `db:"notified_at"`
}

// Subscriber is a row in subscribers
type Subscriber struct {
	ID         string       `db:"id"`
	Email      string       `db:"email"`
	CreatedAt  time.Time    `db:"created_at"`
	NotifiedAt sql.NullTime `db:"notified_at"`
}

// JobApplication is a row in job_applications
type JobApplication struct {
	ID         string       `db:"id"`
	Name       string       `db:"name"`
	Email      string       `db:"email"`
	Phone      string       `db:"phone"`
	Position   string       `db:"position"`
	ResumeURL  string       `db:"resume_url"`
	CreatedAt  time.Time    `db:"created_at"`
	NotifiedAt sql.NullTime `db:"notified_at"`
}
