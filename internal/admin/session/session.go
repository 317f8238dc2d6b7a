// Package session holds the persisted logged-in flag gating the admin panel.
//
// The password check is a UX gate, not a security boundary: the backing
// store is reachable without going through it, and the original panel was
// explicit about that. It is deliberately not hardened here.
package session

import (
	"log/slog"

	"github.com/craftline/website-be/shared/kvstore"
)

// DefaultKey is the key the logged-in flag is stored under
const DefaultKey = "admin_session"

// flagValue is the literal the flag key holds while authenticated
const flagValue = "true"

// Session is a single persisted boolean gate. No expiry, no multi-session
// concept.
type Session struct {
	kv     kvstore.Store
	key    string
	secret string
	logger *slog.Logger
}

// New creates a Session checking passwords against the injected secret
func New(kv kvstore.Store, key, secret string, logger *slog.Logger) *Session {
	if key == "" {
		key = DefaultKey
	}
	return &Session{
		kv:     kv,
		key:    key,
		secret: secret,
		logger: logger,
	}
}

// IsAuthenticated reflects the persisted flag; it survives restarts within
// the same data directory.
func (s *Session) IsAuthenticated() bool {
	value, err := s.kv.Get(s.key)
	if err != nil {
		return false
	}
	return string(value) == flagValue
}

// Authenticate sets the flag on a password match and reports the outcome.
// A mismatch leaves the flag untouched.
func (s *Session) Authenticate(password string) bool {
	if password != s.secret {
		s.logger.Warn("Admin login rejected")
		return false
	}

	if err := s.kv.Set(s.key, []byte(flagValue)); err != nil {
		s.logger.Error("Failed to persist session flag",
			slog.Any("error", err),
		)
		return false
	}

	s.logger.Info("Admin logged in")
	return true
}

// Logout clears the flag unconditionally
func (s *Session) Logout() {
	if err := s.kv.Delete(s.key); err != nil {
		s.logger.Error("Failed to clear session flag",
			slog.Any("error", err),
		)
	}

	s.logger.Info("Admin logged out")
}
