package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
)

// Storage wraps a GCS bucket used for product documents and gallery images.
// Objects are publicly readable through bucket-level IAM; writes go through
// signed URLs or the direct upload handler.
type Storage struct {
	Client        *gcs.Client
	Bucket        string
	PublicBaseURL string
	SignTTL       time.Duration
}

func New(client *gcs.Client, bucket, publicBaseURL string, signTTL time.Duration) *Storage {
	return &Storage{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		SignTTL:       signTTL,
	}
}

// SignUploadURL issues a presigned PUT URL for a client-side direct upload.
func (s *Storage) SignUploadURL(objectPath, contentType string) (string, error) {
	if s == nil || s.Client == nil {
		return "", errors.New("storage client is not configured")
	}

	return s.Client.Bucket(s.Bucket).SignedURL(objectPath, &gcs.SignedURLOptions{
		Scheme:      gcs.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(s.SignTTL),
		ContentType: contentType,
	})
}

// Write stores an object server-side.
func (s *Storage) Write(ctx context.Context, objectPath, contentType string, data []byte) error {
	if s == nil || s.Client == nil {
		return errors.New("storage client is not configured")
	}

	w := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *Storage) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/%s/%s", s.PublicBaseURL, s.Bucket, strings.TrimLeft(objectPath, "/"))
}
