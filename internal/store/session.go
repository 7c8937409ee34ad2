package store

import "taskclient/internal/models"

// Session holds the authenticated user and token. Empty at process
// start; seeded by login, registration or bootstrap; cleared on logout
// and account deletion.
type Session struct {
	state
	user          models.User
	token         string
	authenticated bool
}

func NewSession() *Session {
	return &Session{}
}

// SetSession seeds the full session from an auth payload.
func (s *Session) SetSession(auth models.AuthPayload) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.settleLocked()
	s.user = auth.User
	s.token = auth.Token
	s.authenticated = true
	s.notifyLocked()
}

// SetUser replaces the profile, keeping token and authenticated state.
func (s *Session) SetUser(user models.User) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.settleLocked()
	s.user = user
	s.notifyLocked()
}

// Clear resets the session to its empty state.
func (s *Session) Clear() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.settleLocked()
	s.user = models.User{}
	s.token = ""
	s.authenticated = false
	s.notifyLocked()
}

// FailUnauthenticated terminates a login or register attempt: the error
// is recorded and authentication is explicitly dropped.
func (s *Session) FailUnauthenticated(msg string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.loading = false
	s.err = msg
	s.authenticated = false
	s.notifyLocked()
}

func (s *Session) User() models.User {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.user
}

func (s *Session) Token() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.authenticated
}
