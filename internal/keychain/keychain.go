package keychain

import (
	"context"
	"errors"

	"taskclient/internal/models"
)

// ErrNoCredentials means the slot is empty. First run looks like this,
// so callers treat it as an expected state, not a failure.
var ErrNoCredentials = errors.New("no stored credentials")

// Store is the secure credential slot: one serialized {token, user} blob
// that survives process restarts. Implementations own how and where the
// blob is kept.
type Store interface {
	Get(ctx context.Context) (models.AuthPayload, error)
	Set(ctx context.Context, auth models.AuthPayload) error
	Reset(ctx context.Context) error
}
