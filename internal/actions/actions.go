// Package actions implements the asynchronous operation protocol: every
// fetching or mutating operation runs Pending → Fulfilled/Rejected
// against its entity store and emits a toast either way. Errors are
// terminal here, nothing is re-thrown to callers.
package actions

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"taskclient/internal/api"
)

// API is the outbound seam the handlers call through, implemented by
// *api.Client and mocked in tests.
type API interface {
	Get(ctx context.Context, path string, query url.Values) (*api.Envelope, error)
	Post(ctx context.Context, path string, body any) (*api.Envelope, error)
	Patch(ctx context.Context, path string, body any) (*api.Envelope, error)
	Delete(ctx context.Context, path string) (*api.Envelope, error)
}

// flatten renders a field→message validation map as one detail line,
// fields in stable order.
func flatten(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, errs[field])
	}
	return strings.Join(parts, "; ")
}
