// Package app defines the use-case ports the CLI consumes. Keeping
// the interfaces here, away from the service implementations, lets
// command code depend on behavior rather than wiring.
package app

import (
	"context"

	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/repository"
)

// PlanRequest asks for a fresh plan build from a profile.
type PlanRequest struct {
	Profile *domain.Profile

	// Save persists the result as a history snapshot. Ignored when
	// no snapshot store is wired.
	Save bool
}

// PlanResponse carries the built plan and, when saved, the snapshot id.
type PlanResponse struct {
	Plan       *domain.Plan
	SnapshotID string
}

type PlanUseCase interface {
	BuildPlan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type HistoryUseCase interface {
	List(ctx context.Context, limit int) ([]*repository.Snapshot, error)
	Get(ctx context.Context, id string) (*repository.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// CatalogUseCase exposes read-only catalog introspection for the
// `catalog` command group.
type CatalogUseCase interface {
	Describe(ctx context.Context) (*CatalogSummary, error)
}

// CatalogSummary is the catalog command's aggregate view.
type CatalogSummary struct {
	Version     string
	ModuleCount int
	ByCategory  map[domain.Category]int
	Modules     []*domain.Module
}
