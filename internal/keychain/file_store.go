package keychain

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"taskclient/internal/models"
)

// FileStore keeps the credential blob in a single 0600 file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(ctx context.Context) (models.AuthPayload, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.AuthPayload{}, ErrNoCredentials
		}
		return models.AuthPayload{}, fmt.Errorf("reading credentials: %w", err)
	}

	var auth models.AuthPayload
	if err := json.Unmarshal(data, &auth); err != nil {
		return models.AuthPayload{}, fmt.Errorf("parsing credentials: %w", err)
	}

	// A blob without both halves is corrupt, not a session.
	if auth.Token == "" || auth.User.IsZero() {
		return models.AuthPayload{}, fmt.Errorf("incomplete credentials blob")
	}

	return auth, nil
}

func (f *FileStore) Set(ctx context.Context, auth models.AuthPayload) error {
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("serializing credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

func (f *FileStore) Reset(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}
