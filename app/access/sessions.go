package access

import (
	"net/http"
	"time"

	"blogbox/app/repositories"

	"github.com/google/uuid"
)

const sessionCookie = "blogbox_session"

// SessionManager issues and resolves session cookies backed by the
// session repository.
type SessionManager struct {
	sessions repositories.SessionRepository
	maxAge   time.Duration
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(sessions repositories.SessionRepository, maxAge time.Duration) *SessionManager {
	return &SessionManager{sessions: sessions, maxAge: maxAge}
}

// Establish makes the given user the current session identity by
// issuing a fresh token cookie.
func (m *SessionManager) Establish(w http.ResponseWriter, userID int) error {
	token := uuid.New().String()
	expires := time.Now().Add(m.maxAge)

	if err := m.sessions.Create(token, userID, expires); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
	return nil
}

// Clear drops the current session unconditionally.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) {
	if c, _ := r.Cookie(sessionCookie); c != nil && c.Value != "" {
		_ = m.sessions.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// CurrentUserID resolves the request's session cookie to a user ID.
func (m *SessionManager) CurrentUserID(r *http.Request) (int, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return 0, false
	}
	id, err := m.sessions.Get(c.Value)
	if err != nil {
		return 0, false
	}
	return id, true
}
