// Package blobstore abstracts where uploaded documents live. The
// application only ever sees opaque references: a key chosen at upload
// time and a URL a client can fetch the content from.
package blobstore

import (
	"context"
	"io"
)

// Store receives uploaded binary documents and returns stable
// references to them.
type Store interface {
	// Put stores the content under key and returns the public URL for
	// the stored object.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// URL returns the public URL for a previously stored key.
	URL(key string) string
}
