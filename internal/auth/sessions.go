package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie carried by every authenticated request.
const CookieName = "sid"

// DefaultSessionTTL keeps users logged in for a week of inactivity.
const DefaultSessionTTL = 7 * 24 * time.Hour

type session struct {
	userID  int64
	expires time.Time
}

// SessionStore is an in-memory, process-local session table keyed by UUID
// token. A restart logs everyone out.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
}

// NewSessionStore returns a store with the given TTL (DefaultSessionTTL when
// zero).
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Create issues a new session token for the user.
func (s *SessionStore) Create(userID int64) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{userID: userID, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// UserID resolves a token to its user, sliding the expiry forward. Expired
// tokens are removed on access.
func (s *SessionStore) UserID(token string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expires) {
		delete(s.sessions, token)
		return 0, false
	}
	sess.expires = time.Now().Add(s.ttl)
	s.sessions[token] = sess
	return sess.userID, true
}

// Destroy removes a session token.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
