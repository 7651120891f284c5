package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
)

// GCSStore keeps media in a Cloud Storage bucket under reports/ and returns
// public object URLs as locators.
type GCSStore struct {
	client     *storage.Client
	bucketName string
}

func NewGCSStore(ctx context.Context, bucketName, credentialsPath string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &GCSStore{
		client:     client,
		bucketName: bucketName,
	}, nil
}

var _ service.MediaStore = (*GCSStore)(nil)

func (s *GCSStore) Store(ctx context.Context, file io.Reader, contentType string, size int64) (string, error) {
	ext, err := validateUpload(contentType, size)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("reports/%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), ext)

	obj := s.client.Bucket(s.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, io.LimitReader(file, MaxUploadSize)); err != nil {
		wc.Close()
		return "", errors.Storage("Failed to copy file to GCS", err)
	}

	if err := wc.Close(); err != nil {
		return "", errors.Storage("Failed to close writer", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", errors.Storage("Failed to set ACL", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}

func (s *GCSStore) Delete(ctx context.Context, locator string) error {
	// Expected locator format: https://storage.googleapis.com/bucket-name/object
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(locator, prefix) {
		return errors.BadRequest("Invalid media locator", nil)
	}

	path := locator[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != s.bucketName {
		return errors.BadRequest("Invalid media locator", nil)
	}

	obj := s.client.Bucket(s.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return errors.NotFound("Media", err)
		}
		return errors.Storage("Failed to delete file", err)
	}

	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
