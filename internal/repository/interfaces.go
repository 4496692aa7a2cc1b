package repository

import (
	"context"
	"time"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// Snapshot is one saved plan run: the full rendered plan plus the
// headline profile figures it was built from, so history listings
// can show progress without re-reading old profiles.
type Snapshot struct {
	ID             string
	CreatedAt      time.Time
	CatalogVersion string
	Score          float64
	Tier           domain.Tier
	WeekCount      int
	ModuleCount    int
	TotalMinutes   int
	Plan           *domain.Plan
}

type SnapshotRepo interface {
	Create(ctx context.Context, s *Snapshot) error
	GetByID(ctx context.Context, id string) (*Snapshot, error)
	List(ctx context.Context, limit int) ([]*Snapshot, error)
	Delete(ctx context.Context, id string) error
}
