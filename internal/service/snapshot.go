package service

import (
	"context"
	"fmt"

	"inventoryviewer/internal/domain"
	"inventoryviewer/internal/loader"
	"inventoryviewer/internal/repository"

	"go.uber.org/zap"
)

// SnapshotService loads YAML snapshots into the store
type SnapshotService struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(repo repository.Repository, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{repo: repo, logger: logger}
}

// ImportFile parses the snapshot at path and replaces the store contents.
// The store is left untouched when the file does not validate.
func (s *SnapshotService) ImportFile(ctx context.Context, path string) (*domain.ImportInfo, error) {
	snap, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, snap)
}

// Import replaces the store contents with snap
func (s *SnapshotService) Import(ctx context.Context, snap *domain.Snapshot) (*domain.ImportInfo, error) {
	if err := loader.Validate(snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	info, err := s.repo.ImportSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("import snapshot: %w", err)
	}

	s.logger.Info("Imported inventory snapshot",
		zap.String("source", info.Source),
		zap.Int("modules", info.Modules),
		zap.Int("cables", info.Cables))

	return info, nil
}
