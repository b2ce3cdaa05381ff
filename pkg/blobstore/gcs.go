package blobstore

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS stores uploads in a Google Cloud Storage bucket. If credsPath is
// empty, Application Default Credentials are used.
type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(ctx context.Context, credsPath, bucket string) (*GCS, error) {
	var (
		client *storage.Client
		err    error
	)
	if credsPath == "" {
		client, err = storage.NewClient(ctx)
	} else {
		client, err = storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
	}
	if err != nil {
		return nil, err
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	wc := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return g.URL(key), nil
}

func (g *GCS) URL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, key)
}

func (g *GCS) Close() error { return g.client.Close() }

var _ Store = (*GCS)(nil)
