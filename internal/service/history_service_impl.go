package service

import (
	"context"
	"fmt"
	"time"

	"github.com/amandalowe/creditcoach/internal/repository"
)

type historyService struct {
	snapshots repository.SnapshotRepo
	observer  UseCaseObserver
}

// NewHistoryService creates the history use case.
func NewHistoryService(snapshots repository.SnapshotRepo, observer UseCaseObserver) HistoryService {
	return &historyService{snapshots: snapshots, observer: observer}
}

func (s *historyService) List(ctx context.Context, limit int) (_ []*repository.Snapshot, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "history_list", started, err, map[string]any{"limit": limit})
	}()

	snapshots, err := s.snapshots.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	return snapshots, nil
}

func (s *historyService) Get(ctx context.Context, id string) (_ *repository.Snapshot, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "history_get", started, err, map[string]any{"id": id})
	}()

	snapshot, err := s.snapshots.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *historyService) Delete(ctx context.Context, id string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "history_delete", started, err, map[string]any{"id": id})
	}()

	return s.snapshots.Delete(ctx, id)
}
