package sessions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/warblerhq/warbler/internal/jwt"
	"github.com/warblerhq/warbler/internal/logger"
)

// ErrNotFound is returned by a Store when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// Session is the server-side state addressed by the signed cookie token.
// UserID is nil for anonymous sessions. Flashes are one-shot notices queued
// on a redirect and consumed by the next render.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    *int64    `json:"user_id,omitempty"`
	Flashes   []string  `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	dirty bool
}

// NewSession returns a fresh anonymous session. It is not persisted until
// something is stored in it and Manager.Save is called.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// SetUser marks the session as authenticated as the given user.
func (s *Session) SetUser(userID int64) {
	s.UserID = &userID
	s.dirty = true
}

// ClearUser drops the authenticated user, keeping queued flashes.
func (s *Session) ClearUser() {
	if s.UserID != nil {
		s.UserID = nil
		s.dirty = true
	}
}

// AddFlash queues a one-shot notice for the next render.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
	s.dirty = true
}

// PopFlashes returns the queued notices and clears them.
func (s *Session) PopFlashes() []string {
	if len(s.Flashes) == 0 {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return flashes
}

// Dirty reports whether the session changed since it was loaded and needs
// to be saved before the response is written.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Store persists sessions keyed by their ID.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Manager ties a Store to the signed-cookie codec: it resolves the session
// for a request and writes it back together with the Set-Cookie header.
type Manager struct {
	store Store
	codec *jwt.JWT
}

// NewManager creates a session manager over the given store and token codec.
func NewManager(store Store, codec *jwt.JWT) *Manager {
	return &Manager{store: store, codec: codec}
}

// Load resolves the request's session. Any failure along the way (missing
// cookie, bad signature, evicted session) yields a fresh anonymous session
// rather than an error: an unidentifiable visitor is just a new visitor.
func (m *Manager) Load(ctx context.Context, r *http.Request) *Session {
	token, err := m.codec.GetTokenFromRequest(ctx, r)
	if err != nil {
		return NewSession()
	}

	sid, err := m.codec.GetSessionID(ctx, token)
	if err != nil {
		logger.Log.Debugw("rejecting session token", "error", err)
		return NewSession()
	}

	session, err := m.store.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Log.Errorw("session store get failed", "sid", sid, "error", err)
		}
		return NewSession()
	}

	return session
}

// Open creates and persists a session for the given user and returns its
// signed token. The API login flow hands this token to the client instead
// of setting a cookie.
func (m *Manager) Open(ctx context.Context, userID int64) (string, error) {
	session := NewSession()
	session.SetUser(userID)

	if err := m.store.Save(ctx, session); err != nil {
		return "", err
	}
	session.dirty = false

	return m.codec.Generate(ctx, session.ID)
}

// Save persists the session and refreshes the cookie. Must run before the
// response status is written, or the cookie is lost.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, session *Session) error {
	if err := m.store.Save(ctx, session); err != nil {
		return err
	}

	token, err := m.codec.Generate(ctx, session.ID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.codec.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.codec.Exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	session.dirty = false
	return nil
}

// Destroy removes the session server-side and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, session *Session) error {
	if err := m.store.Delete(ctx, session.ID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.codec.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
