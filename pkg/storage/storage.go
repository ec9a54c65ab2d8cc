package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store saves uploaded objects and hands back a public URL.
// The interface mirrors the hosted object-storage API the app consumes;
// DiskStore is the self-hosted implementation.
type Store interface {
	Put(ctx context.Context, path string, r io.Reader, size int64) (string, error)
	Remove(ctx context.Context, path string) error
}

// DiskStore writes objects under a base directory and serves them from a
// static route.
type DiskStore struct {
	baseDir    string
	publicBase string
	maxSize    int64
}

func NewDiskStore(baseDir, publicBase string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &DiskStore{
		baseDir:    baseDir,
		publicBase: strings.TrimRight(publicBase, "/"),
		maxSize:    maxSize,
	}, nil
}

// Put writes the object and returns its public URL.
func (s *DiskStore) Put(ctx context.Context, path string, r io.Reader, size int64) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", fmt.Errorf("object exceeds maximum size of %d bytes", s.maxSize)
	}

	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid object path: %s", path)
	}

	target := filepath.Join(s.baseDir, clean)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object dir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return s.publicBase + "/" + filepath.ToSlash(clean), nil
}

// Remove deletes a stored object; missing objects are not an error.
func (s *DiskStore) Remove(ctx context.Context, path string) error {
	target := filepath.Join(s.baseDir, filepath.Clean(path))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

// BaseDir exposes the storage root for static file serving.
func (s *DiskStore) BaseDir() string {
	return s.baseDir
}
