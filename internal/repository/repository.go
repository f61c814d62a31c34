package repository

import (
	"context"
	"errors"

	"inventoryviewer/internal/domain"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = errors.New("not found")

// Reader is the read side used by the inventory view
type Reader interface {
	// ListModules returns every module with its device, site, location and
	// module type populated, ordered by id
	ListModules(ctx context.Context) ([]domain.Module, error)

	// ListModuleCables returns the distinct cables attached to the module's
	// front ports, rear ports and interfaces, ordered by id, with
	// terminations loaded
	ListModuleCables(ctx context.Context, module *domain.Module) ([]domain.Cable, error)

	// ResolveTermination loads the concrete object a termination points at
	ResolveTermination(ctx context.Context, term domain.CableTermination) (domain.Endpoint, error)

	// LastImport describes the most recent snapshot import, nil if none
	LastImport(ctx context.Context) (*domain.ImportInfo, error)
}

// Repository adds snapshot loading to Reader
type Repository interface {
	Reader

	// ImportSnapshot replaces the store contents in one transaction
	ImportSnapshot(ctx context.Context, snap *domain.Snapshot) (*domain.ImportInfo, error)

	// Close releases resources
	Close() error
}
