package storage

import (
	"fmt"

	"roadwatch/pkg/errors"
)

const MaxUploadSize = 10 * 1024 * 1024 // 10 MiB

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// validateUpload enforces the size ceiling and image allow-list shared by
// every backend. It runs before any write.
func validateUpload(contentType string, size int64) (string, error) {
	if size <= 0 {
		return "", errors.BadRequest("Empty upload", nil)
	}
	if size > MaxUploadSize {
		return "", errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", MaxUploadSize/(1024*1024)), nil)
	}

	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", errors.BadRequest("Only .png, .jpg and .jpeg files are allowed", nil)
	}

	return ext, nil
}
