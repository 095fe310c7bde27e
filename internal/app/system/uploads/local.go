// internal/app/system/uploads/local.go
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores uploads on the local filesystem under a base directory and
// serves them via the static /uploads file server.
type Local struct {
	baseDir string
	baseURL string // URL prefix, e.g. "/uploads"
}

// NewLocal creates a local store rooted at baseDir. Files are addressed
// publicly as baseURL/<key>.
func NewLocal(baseDir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Local{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object under baseDir, creating intermediate directories.
func (l *Local) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	full, err := l.safePath(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating upload subdir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	return l.URL(key), nil
}

// Delete removes the file for key. Missing files are not an error.
func (l *Local) Delete(_ context.Context, key string) error {
	full, err := l.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public path for a stored key.
func (l *Local) URL(key string) string {
	return l.baseURL + "/" + strings.TrimLeft(key, "/")
}

// KeyFromURL recovers the storage key from a URL previously returned by
// URL. Returns "" when the URL does not belong to this store.
func (l *Local) KeyFromURL(url string) string {
	prefix := l.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}

// safePath joins key under baseDir and rejects traversal outside it.
func (l *Local) safePath(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty upload key")
	}
	full := filepath.Join(l.baseDir, filepath.FromSlash(clean))
	base := filepath.Clean(l.baseDir) + string(os.PathSeparator)
	if !strings.HasPrefix(full, base) {
		return "", fmt.Errorf("upload key escapes base dir: %q", key)
	}
	return full, nil
}
