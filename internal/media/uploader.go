package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"
)

// ObjectStore writes a blob and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// dataURLPattern matches "data:<mime>;base64,<payload>".
var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// Uploader stores base64 data-URL payloads in an object store.
type Uploader struct {
	store ObjectStore
}

// NewUploader constructs an Uploader over the given store.
func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{store: store}
}

// Upload decodes a data URL and stores it under prefix + millisecond timestamp.
// A payload that is not a well-formed data URL returns ("", nil): the caller
// treats it as "no upload", not an error. Store failures propagate.
func (u *Uploader) Upload(ctx context.Context, dataURL, prefix string) (string, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", nil
	}
	mime := m[1]
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil
	}

	name := fmt.Sprintf("%s%d.bin", prefix, time.Now().UnixMilli())
	url, err := u.store.Put(ctx, name, mime, raw)
	if err != nil {
		return "", fmt.Errorf("store media object: %w", err)
	}
	return url, nil
}
