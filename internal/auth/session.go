package auth

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"taskmaster/internal/model"
)

// Session holds the current authenticated identity and its bearer
// credential for the lifetime of one client session. Components that need
// to react to login/logout register a listener with OnChange; listeners run
// synchronously on the goroutine that changed the session.
type Session struct {
	mu        sync.Mutex
	user      *model.User
	token     string
	listeners []func()
}

func NewSession() *Session {
	return &Session{}
}

// User returns the current identity, or nil when logged out.
func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer credential, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a credential is present.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// OnChange registers fn to run after every identity transition
// (login, logout, session restore).
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Establish installs the identity and credential returned by a successful
// login, register or restore.
func (s *Session) Establish(user *model.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	if user != nil {
		log.WithField("user", user.Username).Debug("session established")
	}
	s.notify()
}

// Clear drops the identity and credential. Registered listeners observe the
// logged-out state, which is how the task store learns to empty its cache.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	log.Debug("session cleared")
	s.notify()
}

func (s *Session) notify() {
	s.mu.Lock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
