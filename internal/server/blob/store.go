// Package blob stores profile-icon binaries outside the relational row.
// The backend is a strategy chosen once at startup (local directory or an
// S3-compatible object store) and injected into the profile service.
package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ymstdo/userbase/internal/server/config"
)

// Store persists binary content and returns the storage key referenced by
// the user row's icon_key column.
type Store interface {
	Store(ctx context.Context, content []byte, contentType, filename string) (string, error)
}

// StoreError wraps a backend failure. Callers treat any StoreError as
// operation failure; retrying is their decision.
type StoreError struct {
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("blob store (%s): %v", e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// New selects the backend strategy from configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.IconBackend {
	case config.IconBackendLocal:
		return NewLocalStore(cfg.IconLocalDir)
	case config.IconBackendS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown icon backend %q", cfg.IconBackend)
	}
}

// newIconKey derives a fresh storage key of the form
// "icons/<uuid>.<extension>", with the extension taken from the content
// type's subtype ("image/png" → "png").
func newIconKey(contentType string) string {
	return fmt.Sprintf("icons/%s.%s", uuid.NewString(), extFromContentType(contentType))
}

func extFromContentType(contentType string) string {
	_, sub, found := strings.Cut(contentType, "/")
	if !found {
		return ""
	}
	return sub
}
