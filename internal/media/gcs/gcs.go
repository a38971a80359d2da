package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// Store writes publicly readable blobs to a Cloud Storage bucket.
type Store struct {
	client *storage.Client
	bucket string
}

// New creates a Cloud Storage client using ambient credentials.
func New(ctx context.Context, bucket string) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Store{client: client, bucket: bucket}, nil
}

// Put uploads the blob, marks it publicly readable, and returns its URL.
func (s *Store) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(name)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", name, err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("make object %s public: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name), nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
