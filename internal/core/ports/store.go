package ports

import "go.trai.ch/droidplan/internal/core/domain"

// LockfileStore defines the interface for persisting resolved plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Get reads the lockfile stored in root.
	// Returns nil, nil if not found.
	Get(root string) (*domain.Lockfile, error)

	// Put stores the lockfile in root.
	Put(root string, lock *domain.Lockfile) error
}
