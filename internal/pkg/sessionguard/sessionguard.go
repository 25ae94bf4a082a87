// Package sessionguard bounds how long an issued access token may be held
// by a client session. A session opens with a fixed lifetime; when the
// ceiling is reached the token is cleared and the expiry callback fires,
// regardless of any activity in between.
package sessionguard

import (
	"errors"
	"sync"
	"time"
)

// ErrSessionExpired is returned when the token of an expired or closed
// session is requested.
var ErrSessionExpired = errors.New("session expired")

// Guard creates sessions with a shared fixed lifetime
type Guard struct {
	lifetime time.Duration
}

// NewGuard creates a Guard. Sessions it opens expire after lifetime.
func NewGuard(lifetime time.Duration) *Guard {
	return &Guard{lifetime: lifetime}
}

// Lifetime returns the fixed session lifetime
func (g *Guard) Lifetime() time.Duration {
	return g.lifetime
}

// Session holds an access token for at most the guard's lifetime.
// There is no renewal: activity does not push the deadline back.
type Session struct {
	mu       sync.Mutex
	token    string
	deadline time.Time
	timer    *time.Timer
	closed   bool
	expired  bool
	onExpire func()
}

// Open starts a session holding token. When the lifetime elapses the token
// is cleared and onExpire is invoked once. Closing the session first
// cancels the timer and the callback never fires.
func (g *Guard) Open(token string, onExpire func()) *Session {
	s := &Session{
		token:    token,
		deadline: time.Now().Add(g.lifetime),
		onExpire: onExpire,
	}
	s.timer = time.AfterFunc(g.lifetime, s.expire)
	return s
}

func (s *Session) expire() {
	s.mu.Lock()
	if s.closed || s.expired {
		s.mu.Unlock()
		return
	}
	s.expired = true
	s.token = ""
	callback := s.onExpire
	s.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Token returns the held token, or ErrSessionExpired once the session has
// expired or been closed.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.expired {
		return "", ErrSessionExpired
	}
	return s.token, nil
}

// Deadline returns the instant at which the session expires
func (s *Session) Deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deadline
}

// Expired reports whether the lifetime ceiling was reached
func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// Close discards the session and cancels the pending expiry. The expiry
// callback does not fire for a closed session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.expired {
		return
	}
	s.closed = true
	s.token = ""
	s.timer.Stop()
}
