// Package storage holds the upload backends. The default deployment writes
// to a local directory; the alternate deployment targets an S3 bucket.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wattwerk/wattwerk-api/internal/domain"
)

// LocalStorage saves uploads below a directory served under the public URL
// prefix (e.g. /uploads). BaseURI exposes the directory as a file:// root so
// the PDF engine can resolve relative asset references locally.
type LocalStorage struct {
	dir       string
	publicURL string
}

// NewLocalStorage ensures the directory exists.
func NewLocalStorage(dir, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Save writes the stream under a collision-free name and returns the public URL.
func (s *LocalStorage) Save(r io.Reader, filename string) (string, error) {
	name := uuid.New().String() + "_" + sanitizeFilename(filename)
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.publicURL + "/" + name, nil
}

// Delete removes the file referenced by a previously returned URL.
func (s *LocalStorage) Delete(url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("%w: invalid upload url %q", domain.ErrInvalidInput, url)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// BaseURI returns the file:// root used by the PDF engine to resolve
// /uploads/... references.
func (s *LocalStorage) BaseURI() string {
	abs, err := filepath.Abs(s.dir)
	if err != nil {
		abs = s.dir
	}
	return "file://" + abs
}

// Open returns the stored file for serving over HTTP.
func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// sanitizeFilename keeps uploads path-safe.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" {
		name = "file"
	}
	return name
}
