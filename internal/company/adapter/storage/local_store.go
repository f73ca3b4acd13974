package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fincore/internal/company/usecase"

	"github.com/google/uuid"
)

// LocalAssetStore implements the AssetStore interface on the local filesystem.
// Every stored file gets a fresh UUID-based name, so files are never
// overwritten and never cleaned up.
type LocalAssetStore struct {
	dir         string
	allowedExts map[string]struct{}
}

// NewLocalAssetStore creates an asset store rooted at dir, creating the
// directory if it does not exist. allowedExts lists acceptable file
// extensions (lowercase, without dot); an empty list accepts any extension.
func NewLocalAssetStore(dir string, allowedExts []string) (*LocalAssetStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}

	store := &LocalAssetStore{dir: dir}
	if len(allowedExts) > 0 {
		store.allowedExts = make(map[string]struct{}, len(allowedExts))
		for _, ext := range allowedExts {
			store.allowedExts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
		}
	}

	return store, nil
}

// Store writes content to a new file named by a fresh UUID plus the original
// filename's extension and returns the stored filename. A name without an
// extension is stored under the bare UUID.
func (s *LocalAssetStore) Store(ctx context.Context, content io.Reader, originalFilename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalFilename), "."))
	if s.allowedExts != nil {
		if _, ok := s.allowedExts[ext]; !ok {
			return "", usecase.ErrExtensionNotAllowed
		}
	}

	filename := uuid.NewString()
	if ext != "" {
		filename = filename + "." + ext
	}

	// O_EXCL guards against the astronomically unlikely UUID collision.
	path := filepath.Join(s.dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write asset file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close asset file: %w", err)
	}

	return filename, nil
}

// Dir returns the directory assets are written to.
func (s *LocalAssetStore) Dir() string {
	return s.dir
}
