package sessionguard

import (
	"errors"
	"testing"
	"time"
)

func TestTokenAvailableBeforeDeadline(t *testing.T) {
	g := NewGuard(time.Minute)
	s := g.Open("access-token", nil)
	defer s.Close()

	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "access-token" {
		t.Errorf("token = %q, want %q", token, "access-token")
	}
	if s.Expired() {
		t.Error("session reported expired before the deadline")
	}
}

func TestExpiryClearsTokenAndFiresCallback(t *testing.T) {
	g := NewGuard(20 * time.Millisecond)

	fired := make(chan struct{})
	s := g.Open("access-token", func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry callback did not fire")
	}

	if !s.Expired() {
		t.Error("Expired() = false after the deadline")
	}
	if _, err := s.Token(); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Token after expiry: err = %v, want ErrSessionExpired", err)
	}
}

func TestActivityDoesNotExtendDeadline(t *testing.T) {
	g := NewGuard(50 * time.Millisecond)

	fired := make(chan struct{})
	s := g.Open("access-token", func() { close(fired) })

	deadline := s.Deadline()

	// Reading the token repeatedly must not push the deadline back.
	for i := 0; i < 4; i++ {
		time.Sleep(10 * time.Millisecond)
		s.Token()
	}
	if !s.Deadline().Equal(deadline) {
		t.Error("deadline moved after token reads")
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("session outlived its fixed lifetime")
	}
}

func TestCloseCancelsExpiry(t *testing.T) {
	g := NewGuard(20 * time.Millisecond)

	fired := make(chan struct{})
	s := g.Open("access-token", func() { close(fired) })
	s.Close()

	if _, err := s.Token(); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("Token after close: err = %v, want ErrSessionExpired", err)
	}

	select {
	case <-fired:
		t.Fatal("expiry callback fired for a closed session")
	case <-time.After(100 * time.Millisecond):
	}

	if s.Expired() {
		t.Error("a closed session must not report Expired")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	g := NewGuard(time.Minute)
	s := g.Open("access-token", nil)

	s.Close()
	s.Close()
}

func TestGuardLifetime(t *testing.T) {
	g := NewGuard(30 * time.Minute)
	if g.Lifetime() != 30*time.Minute {
		t.Errorf("Lifetime = %v, want 30m", g.Lifetime())
	}

	s := g.Open("x", nil)
	defer s.Close()

	remaining := time.Until(s.Deadline())
	if remaining > 30*time.Minute || remaining < 29*time.Minute {
		t.Errorf("deadline %v away, want about 30m", remaining)
	}
}
