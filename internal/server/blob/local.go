package blob

import (
	"context"

	"github.com/ymstdo/userbase/internal/filex"
)

// LocalStore writes blobs under a directory on the server's own disk.
type LocalStore struct {
	dir string
}

// NewLocalStore ensures dir exists and returns a store rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, &StoreError{Backend: "local", Err: err}
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Store(ctx context.Context, content []byte, contentType, filename string) (string, error) {
	key := newIconKey(contentType)
	if err := filex.WriteFile(s.dir, key, content); err != nil {
		return "", &StoreError{Backend: "local", Err: err}
	}
	return key, nil
}
