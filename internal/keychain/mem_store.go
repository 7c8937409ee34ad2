package keychain

import (
	"context"
	"sync"

	"taskclient/internal/models"
)

// MemStore is an in-process Store used by tests.
type MemStore struct {
	mtx  sync.Mutex
	auth models.AuthPayload
	set  bool

	// Err, when set, is returned by every call. Lets tests exercise
	// storage failures.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Get(ctx context.Context) (models.AuthPayload, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Err != nil {
		return models.AuthPayload{}, m.Err
	}
	if !m.set {
		return models.AuthPayload{}, ErrNoCredentials
	}
	return m.auth, nil
}

func (m *MemStore) Set(ctx context.Context, auth models.AuthPayload) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.auth = auth
	m.set = true
	return nil
}

func (m *MemStore) Reset(ctx context.Context) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.auth = models.AuthPayload{}
	m.set = false
	return nil
}
