package service

import (
	"context"
	"io"
)

// MediaStore persists image bytes and yields stable locators. Implementations
// must validate size and content type before any write occurs.
type MediaStore interface {
	Store(ctx context.Context, file io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, locator string) error
}
