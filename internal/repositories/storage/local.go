package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalConfig holds configuration for the local-file blob repository
type LocalConfig struct {
	// Dir is the directory blobs are written into
	Dir string
}

// localRepository implements the Repository interface on the local
// filesystem. Used for development in place of Redis.
type localRepository struct {
	dir string
}

// NewLocal creates a new file-backed blob repository
func NewLocal(cfg *LocalConfig) (*localRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	return &localRepository{dir: dir}, nil
}

// Save writes a blob to disk
func (r *localRepository) Save(_ context.Context, input *SaveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	path := filepath.Join(r.dir, input.Key)
	if err := os.WriteFile(path, input.Blob, 0o644); err != nil {
		return fmt.Errorf("failed to save blob %s: %w", input.Key, err)
	}
	return nil
}

// Load reads a blob from disk
func (r *localRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	blob, err := os.ReadFile(filepath.Join(r.dir, input.Key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &LoadOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to load blob %s: %w", input.Key, err)
	}

	return &LoadOutput{Blob: blob, Found: true}, nil
}
