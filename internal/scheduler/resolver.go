package scheduler

import (
	"github.com/amandalowe/creditcoach/internal/domain"
)

// ResolvePrerequisites returns the smallest superset of eligible that
// also contains every transitively required prerequisite from the
// catalog. Prerequisites are pulled in regardless of their own
// eligibility. A prerequisite id that does not exist in the catalog is
// ignored.
//
// The expansion is an iterative fixed point: each pass scans the
// current set for unresolved references and appends them. Passes are
// bounded by the square of the initial candidate count so a cyclic or
// self-referencing catalog can never loop forever; hitting the bound
// just stops the expansion early.
func ResolvePrerequisites(eligible []*domain.Module, catalog *domain.Catalog) []*domain.Module {
	if len(eligible) == 0 {
		return nil
	}

	working := make([]*domain.Module, 0, len(eligible))
	seen := make(map[string]bool, len(eligible))
	for _, m := range eligible {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		working = append(working, m)
	}

	maxPasses := len(working) * len(working)
	if maxPasses < 1 {
		maxPasses = 1
	}

	for pass := 0; pass < maxPasses; pass++ {
		added := false
		size := len(working)
		for i := 0; i < size; i++ {
			for _, pid := range working[i].Prerequisites {
				if seen[pid] {
					continue
				}
				pm, ok := catalog.Get(pid)
				if !ok {
					continue
				}
				seen[pid] = true
				working = append(working, pm)
				added = true
			}
		}
		if !added {
			break
		}
	}

	return working
}
