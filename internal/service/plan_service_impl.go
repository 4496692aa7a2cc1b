package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amandalowe/creditcoach/internal/app"
	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/planner"
	"github.com/amandalowe/creditcoach/internal/repository"
	"github.com/amandalowe/creditcoach/internal/scheduler"
)

type planService struct {
	catalog        *domain.Catalog
	caps           scheduler.WeekCaps
	snapshots      repository.SnapshotRepo // nil disables saving
	catalogVersion string
	observer       UseCaseObserver
}

// NewPlanService creates the plan use case. snapshots may be nil when
// history persistence is not wired (the default for one-shot runs).
func NewPlanService(catalog *domain.Catalog, caps scheduler.WeekCaps, snapshots repository.SnapshotRepo, observer UseCaseObserver) PlanService {
	return &planService{
		catalog:        catalog,
		caps:           caps,
		snapshots:      snapshots,
		catalogVersion: catalog.Version,
		observer:       observer,
	}
}

func (s *planService) BuildPlan(ctx context.Context, req app.PlanRequest) (_ *app.PlanResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "build_plan", started, err, map[string]any{
			"saved": req.Save && s.snapshots != nil,
		})
	}()

	if req.Profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	plan := planner.BuildPlan(s.catalog, req.Profile, s.caps)
	resp := &app.PlanResponse{Plan: plan}

	if req.Save && s.snapshots != nil {
		snapshot := &repository.Snapshot{
			ID:             uuid.New().String(),
			CreatedAt:      time.Now().UTC(),
			CatalogVersion: s.catalogVersion,
			Score:          req.Profile.Scorecard.Score,
			Tier:           req.Profile.Scorecard.Tier,
			WeekCount:      plan.WeekCount,
			ModuleCount:    plan.ModuleCount,
			TotalMinutes:   plan.TotalMinutes,
			Plan:           plan,
		}
		if err = s.snapshots.Create(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("saving plan snapshot: %w", err)
		}
		resp.SnapshotID = snapshot.ID
	}

	return resp, nil
}
