package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/divai-site/internal/entity"
)

const CookieName = "div_session"

// Store keeps visitor sessions in memory. Load hands out copies; changes
// go through Update, which applies one mutation under the lock, so a stale
// copy can never overwrite fields another request changed.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entity.VisitorSession
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		sessions: make(map[string]*entity.VisitorSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Load returns a copy of the session for id. When id is unknown or expired
// it returns a fresh session with a new ID and reports true; that session is
// not stored until the first Update.
func (s *Store) Load(id string) (*entity.VisitorSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok && now.Sub(sess.LastSeen) <= s.ttl {
		sess.LastSeen = now
		cp := *sess
		return &cp, false
	}

	return &entity.VisitorSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}, true
}

// Update applies fn to the stored session for id, creating it on first
// use, and returns a copy of the result.
func (s *Store) Update(id string, fn func(*entity.VisitorSession)) *entity.VisitorSession {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &entity.VisitorSession{ID: id, CreatedAt: now}
		s.sessions[id] = sess
	}
	if fn != nil {
		fn(sess)
	}
	sess.LastSeen = now

	cp := *sess
	return &cp
}

// Has reports whether id is a stored, unexpired session.
func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	return ok && s.now().Sub(sess.LastSeen) <= s.ttl
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup drops every session idle for longer than the TTL.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

type ctxKey struct{}

func WithSession(ctx context.Context, sess *entity.VisitorSession) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the request's session, or nil outside the middleware.
func FromContext(ctx context.Context) *entity.VisitorSession {
	sess, _ := ctx.Value(ctxKey{}).(*entity.VisitorSession)
	return sess
}
