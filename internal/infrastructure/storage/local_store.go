package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"roadwatch/internal/domain/service"
	"roadwatch/pkg/errors"
)

// LocalStore writes media to a directory on disk. Locators take the form
// /uploads/<name> and are served statically by the HTTP server.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}
	return &LocalStore{dir: dir}, nil
}

var _ service.MediaStore = (*LocalStore)(nil)

func (s *LocalStore) Store(ctx context.Context, file io.Reader, contentType string, size int64) (string, error) {
	ext, err := validateUpload(contentType, size)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Storage("Failed to store file", err)
	}

	if _, err := io.Copy(dst, io.LimitReader(file, MaxUploadSize)); err != nil {
		dst.Close()
		os.Remove(path)
		return "", errors.Storage("Failed to store file", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", errors.Storage("Failed to store file", err)
	}

	return "/uploads/" + name, nil
}

func (s *LocalStore) Delete(ctx context.Context, locator string) error {
	name, ok := strings.CutPrefix(locator, "/uploads/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return errors.BadRequest("Invalid media locator", nil)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("Media", err)
		}
		return errors.Storage("Failed to delete file", err)
	}

	return nil
}
