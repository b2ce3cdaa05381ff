package blobstore

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// Local stores uploads as plain files under dir; the server exposes dir
// statically under publicPath, so references resolve to
// publicPath/<key>. This is the default driver and mirrors deployments
// where documents sit next to the process.
type Local struct {
	dir        string
	publicPath string
}

func NewLocal(dir, publicPath string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir, publicPath: publicPath}, nil
}

// Dir returns the directory served statically.
func (l *Local) Dir() string { return l.dir }

func (l *Local) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	// contentType is unused: the static file server infers it from the
	// file extension carried in the key.
	f, err := os.Create(filepath.Join(l.dir, filepath.Base(key)))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return l.URL(key), nil
}

func (l *Local) URL(key string) string {
	return path.Join(l.publicPath, path.Base(key))
}

var _ Store = (*Local)(nil)
