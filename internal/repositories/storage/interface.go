package storage

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wangandai/ascentbot/internal/repositories/storage Repository

// Repository is an opaque blob store keyed by filename. The guild registry is
// saved and loaded wholesale as a single document.
type Repository interface {
	// Save persists a blob under a key
	Save(ctx context.Context, input *SaveInput) error

	// Load reads a blob by key; a missing key is not an error
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
