// Package upload stores card images on local disk. Compression happens
// client-side before the bytes arrive; this service only persists them.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// allowed upload extensions, lowercase
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Service interface {
	Save(originalName string, r io.Reader) (string, error)
	Path(filename string) string
}

type service struct {
	dir string
}

// NewService creates an upload service rooted at dir, creating it if needed.
func NewService(dir string) (Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &service{dir: dir}, nil
}

// Save writes the uploaded bytes under a fresh server-assigned filename
// and returns that filename. The original name only contributes its
// extension; nothing client-controlled reaches the filesystem path.
func (s *service) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if n == 0 {
		os.Remove(f.Name())
		return "", ErrEmptyFile
	}
	return name, nil
}

// Path returns the on-disk path for a stored filename.
func (s *service) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
