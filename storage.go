package showcase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStorageNotConfigured is returned when SaveImage is called without a
// storage backend.
var ErrStorageNotConfigured = errors.New("storage not configured")

// Storage is a minimal interface for writing generated images somewhere
// addressable. Implementations can wrap cloud storage clients (GCS, S3, etc.).
type Storage interface {
	// SaveFile saves data under path and returns where it can be found.
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// StorageResult contains information about a saved image.
type StorageResult struct {
	// Location is the URL or filesystem path of the saved image
	Location string

	// Path is the storage key the image was saved under
	Path string

	// Size is the number of bytes saved
	Size int
}

// SaveImage saves img to storage as {basePath}.{extension}.
func SaveImage(ctx context.Context, storage Storage, img ImageData, basePath string) (*StorageResult, error) {
	if storage == nil {
		return nil, ErrStorageNotConfigured
	}
	if img.IsZero() {
		return nil, ErrNoImageGenerated
	}

	path := basePath
	if filepath.Ext(path) == "" {
		path = path + "." + extensionFromMIME(img.MIMEType)
	}

	location, err := storage.SaveFile(ctx, img.Data, path, img.MIMEType)
	if err != nil {
		return nil, err
	}

	return &StorageResult{
		Location: location,
		Path:     path,
		Size:     len(img.Data),
	}, nil
}

// FileStorage writes images below a local directory.
type FileStorage struct {
	Dir string
}

// SaveFile writes data to Dir/path, creating parent directories as needed.
func (s *FileStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full := path
	if s.Dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(s.Dir, path)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", full, err)
	}
	return full, nil
}

// extensionFromMIME returns a file extension for common image MIME types.
func extensionFromMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
