// internal/app/system/uploads/uploads.go
//
// Package uploads stores media files (partner logos, project images,
// gallery media) on local disk or S3 and hands back the public URL that
// gets persisted on the document.
package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store is the storage backend contract. Local serves files from the
// uploads directory; S3 serves them from a bucket/CDN.
type Store interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	// Delete removes the object. Used best-effort when replacing files.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL for an existing key.
	URL(key string) string
	// KeyFromURL recovers the storage key from a URL previously returned
	// by Put or URL. Returns "" for URLs this store does not own.
	KeyFromURL(url string) string
}

// BuildKey generates a unique object key: <prefix>/YYYY/MM/xxxxxxxx-name.
// The short uuid prefix avoids collisions while keeping keys readable.
func BuildKey(prefix, filename string) string {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("%s/%04d/%02d", prefix, now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], SanitizeFilename(filename))
	return path.Join(dateDir, uniqueName)
}

// SanitizeFilename removes or replaces characters that could be problematic
// in object keys and on disk.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == ".." || filename == "/" {
		return "file"
	}

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
