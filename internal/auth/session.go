// Package auth implements the mock session: a single record under a fixed
// storage key whose presence means "logged in". Nothing is verified or
// hashed; the store only validates input shape.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/existflow/ticketr/internal/clock"
	"github.com/existflow/ticketr/internal/logger"
	"github.com/existflow/ticketr/internal/model"
	"github.com/existflow/ticketr/internal/storage"
)

// SessionKey is the storage key of the session document
const SessionKey = "ticketapp_session"

// MinPasswordLength is the shortest accepted password, in UTF-16 code units
const MinPasswordLength = 6

// SessionStore manages the current-user session record
type SessionStore struct {
	storage storage.Storage
	clock   clock.Clock
}

// NewSessionStore creates a SessionStore over s
func NewSessionStore(s storage.Storage, c clock.Clock) *SessionStore {
	return &SessionStore{storage: s, clock: c}
}

// IsAuthenticated reports whether a non-empty session record exists
func (s *SessionStore) IsAuthenticated(ctx context.Context) (bool, error) {
	raw, ok, err := s.storage.Get(ctx, SessionKey)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return ok && raw != "", nil
}

// CurrentUser returns the stored session, or nil when logged out
func (s *SessionStore) CurrentUser(ctx context.Context) (*model.Session, error) {
	raw, ok, err := s.storage.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// Login validates the credentials' shape and starts a session named after
// the email's local part
func (s *SessionStore) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if email == "" || password == "" {
		return nil, model.Validation("Email and password are required")
	}
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	name, _, _ := strings.Cut(email, "@")
	session, err := s.start(ctx, name, email)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in", logger.F("email", email))
	return session, nil
}

// Signup validates the registration form and starts a session with name
func (s *SessionStore) Signup(ctx context.Context, name, email, password, confirmPassword string) (*model.Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, model.Validation("All fields are required")
	}
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if password != confirmPassword {
		return nil, model.Validation("Passwords do not match")
	}

	session, err := s.start(ctx, name, email)
	if err != nil {
		return nil, err
	}

	logger.Info("User signed up", logger.F("email", email), logger.F("name", name))
	return session, nil
}

// Logout removes the session record. Logging out twice is fine.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.storage.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	logger.Info("User logged out")
	return nil
}

func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return model.Validation("Invalid email format")
	}
	if passwordLength(password) < MinPasswordLength {
		return model.Validation(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	return nil
}

// passwordLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice
func passwordLength(password string) int {
	return len(utf16.Encode([]rune(password)))
}

// start overwrites any existing session with a fresh one
func (s *SessionStore) start(ctx context.Context, name, email string) (*model.Session, error) {
	now := s.clock.Now().UnixMilli()
	session := &model.Session{
		ID:    now,
		Email: email,
		Name:  name,
		Token: fmt.Sprintf("mock-jwt-token-%d", now),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.storage.Set(ctx, SessionKey, string(data)); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}
