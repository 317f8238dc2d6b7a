package notify

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/craftline/website-be/internal/notify/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	submissions map[string]*domain.Submission
	marked      []string

	getErr  error
	markErr error
}

func (s *fakeStorage) GetSubmission(_ context.Context, kind, id string) (*domain.Submission, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}

	sub, ok := s.submissions[kind+"/"+id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return sub, nil
}

func (s *fakeStorage) MarkNotified(_ context.Context, kind, id string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.marked = append(s.marked, kind+"/"+id)
	return nil
}

type fakeNotifier struct {
	delivered []*domain.Submission
	failWith  error
}

func (n *fakeNotifier) Notify(_ context.Context, submission *domain.Submission) error {
	if n.failWith != nil {
		return n.failWith
	}
	n.delivered = append(n.delivered, submission)
	return nil
}

func newTestWorker(storage SubmissionStore, notifier Notifier) *Worker {
	return NewWorker(&Config{
		Logger:        slog.Default(),
		Storage:       storage,
		Notifier:      notifier,
		Concurrency:   1,
		HandleTimeout: time.Second,
		PrefetchCount: 1,
	})
}

func TestProcessEvent(t *testing.T) {
	submission := &domain.Submission{
		Kind:       domain.KindContact,
		ID:         "abc",
		Email:      "jane@example.com",
		Summary:    "Quote",
		ReceivedAt: time.Now(),
	}
	storage := &fakeStorage{
		submissions: map[string]*domain.Submission{"contact/abc": submission},
	}
	notifier := &fakeNotifier{}
	w := newTestWorker(storage, notifier)

	err := w.processEvent(context.Background(), &domain.EventMessage{Kind: "contact", ID: "abc"})

	require.NoError(t, err)
	require.Len(t, notifier.delivered, 1)
	assert.Equal(t, submission, notifier.delivered[0])
	assert.Equal(t, []string{"contact/abc"}, storage.marked)
}

func TestProcessEvent_MissingSubmissionNotRequeued(t *testing.T) {
	storage := &fakeStorage{submissions: map[string]*domain.Submission{}}
	notifier := &fakeNotifier{}
	w := newTestWorker(storage, notifier)

	err := w.processEvent(context.Background(), &domain.EventMessage{Kind: "contact", ID: "gone"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionNotFound)
	assert.False(t, shouldRequeue(err))
	assert.Empty(t, notifier.delivered)
}

func TestProcessEvent_TransientStorageErrorRequeued(t *testing.T) {
	storage := &fakeStorage{getErr: errors.New("connection reset")}
	w := newTestWorker(storage, &fakeNotifier{})

	err := w.processEvent(context.Background(), &domain.EventMessage{Kind: "contact", ID: "abc"})

	require.Error(t, err)
	assert.True(t, shouldRequeue(err))
}

func TestProcessEvent_NotifierFailureRequeued(t *testing.T) {
	storage := &fakeStorage{
		submissions: map[string]*domain.Submission{
			"subscriber/abc": {Kind: domain.KindSubscriber, ID: "abc", Email: "jane@example.com"},
		},
	}
	notifier := &fakeNotifier{failWith: errors.New("delivery failed")}
	w := newTestWorker(storage, notifier)

	err := w.processEvent(context.Background(), &domain.EventMessage{Kind: "subscriber", ID: "abc"})

	require.Error(t, err)
	assert.True(t, shouldRequeue(err))
	assert.Empty(t, storage.marked)
}

func TestProcessEvent_MarkFailureStillAcks(t *testing.T) {
	storage := &fakeStorage{
		submissions: map[string]*domain.Submission{
			"contact/abc": {Kind: domain.KindContact, ID: "abc", Email: "jane@example.com"},
		},
		markErr: errors.New("connection reset"),
	}
	notifier := &fakeNotifier{}
	w := newTestWorker(storage, notifier)

	err := w.processEvent(context.Background(), &domain.EventMessage{Kind: "contact", ID: "abc"})

	// The notification went out; stamping is best-effort
	assert.NoError(t, err)
	require.Len(t, notifier.delivered, 1)
}

func TestComposeNotification(t *testing.T) {
	received := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		submission *domain.Submission
		contains   string
	}{
		{
			name: "contact",
			submission: &domain.Submission{
				Kind: domain.KindContact, Email: "jane@example.com",
				Summary: "Quote", ReceivedAt: received,
			},
			contains: `contact message "Quote"`,
		},
		{
			name: "subscriber",
			submission: &domain.Submission{
				Kind: domain.KindSubscriber, Email: "jane@example.com", ReceivedAt: received,
			},
			contains: "newsletter subscription",
		},
		{
			name: "job application",
			submission: &domain.Submission{
				Kind: domain.KindJobApplication, Email: "jane@example.com",
				Summary: "Engineer", ReceivedAt: received,
			},
			contains: `job application for "Engineer"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := composeNotification(tt.submission)
			assert.Contains(t, text, tt.contains)
			assert.Contains(t, text, "jane@example.com")
		})
	}
}
