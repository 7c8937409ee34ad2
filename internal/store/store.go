// Package store holds the client's in-memory entity collections. Each
// store is the single source of truth for its entity type: action
// handlers mutate it, live consumers re-read it whenever its
// subscription channel fires. Nothing here suspends, so every
// transition is atomic relative to other dispatches.
package store

import "sync"

// state is the lifecycle core shared by every store: a loading flag and
// a last-error field guarded by one mutex. Exactly one of {loading} or
// {not loading, error or empty} holds at any time. Concurrent
// operations are serialized by the mutex but not coordinated beyond
// last-write-wins on these fields.
type state struct {
	mtx     sync.Mutex
	loading bool
	err     string
	subs    []chan struct{}
}

// Begin marks the start of an in-flight operation.
func (s *state) Begin() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.loading = true
	s.err = ""
	s.notifyLocked()
}

// Fail terminates an operation with an error message.
func (s *state) Fail(msg string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.loading = false
	s.err = msg
	s.notifyLocked()
}

func (s *state) Loading() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.loading
}

func (s *state) Err() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.err
}

// Subscribe returns a channel that fires after every mutation. The send
// is non-blocking: a slow consumer coalesces bursts into one wakeup and
// re-reads the store when it gets around to it.
func (s *state) Subscribe() <-chan struct{} {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// settleLocked completes an operation successfully. Callers hold mtx.
func (s *state) settleLocked() {
	s.loading = false
	s.err = ""
}

func (s *state) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
