// Package scheduler turns a resolved module set into ordered weekly
// study buckets. It is a greedy, single-pass, non-backtracking packer:
// fair and deterministic, not optimal.
package scheduler

import (
	"github.com/amandalowe/creditcoach/internal/domain"
)

// ScheduledModule pairs a module with its assigned week (1-based).
type ScheduledModule struct {
	Module *domain.Module
	Week   int
}

// WeekCaps bounds one week bucket.
type WeekCaps struct {
	MaxMinutes int
	MaxModules int
}

// DefaultWeekCaps returns the standard pacing: at most three modules
// and two hours of study per week.
func DefaultWeekCaps() WeekCaps {
	return WeekCaps{MaxMinutes: 120, MaxModules: 3}
}

// Schedule orders modules canonically, places them respecting
// prerequisites, and buckets them into capacity-bounded weeks.
//
// Placement repeatedly takes the first queued module whose
// prerequisites (among the scheduled set) are already placed. When no
// module qualifies the remaining queue is dropped: an unsatisfiable
// prerequisite chain silently omits its modules rather than failing
// the whole plan.
//
// Capacity checks only gate additional modules. A single module
// longer than the week cap still gets placed, alone in its own week.
func Schedule(modules []*domain.Module, caps WeekCaps) []ScheduledModule {
	if caps.MaxMinutes <= 0 || caps.MaxModules <= 0 {
		caps = DefaultWeekCaps()
	}

	queue := make([]*domain.Module, len(modules))
	copy(queue, modules)
	CanonicalSort(queue)

	inSet := make(map[string]bool, len(queue))
	for _, m := range queue {
		inSet[m.ID] = true
	}

	placed := make(map[string]bool, len(queue))
	var out []ScheduledModule

	week := 1
	weekMinutes := 0
	weekModules := 0

	for len(queue) > 0 {
		idx := -1
		for i, m := range queue {
			if prereqsPlaced(m, inSet, placed) {
				idx = i
				break
			}
		}
		if idx < 0 {
			// Every remaining module waits on something unplaceable.
			break
		}

		m := queue[idx]
		queue = append(queue[:idx], queue[idx+1:]...)

		if weekModules > 0 &&
			(weekModules >= caps.MaxModules || weekMinutes+m.DurationMin > caps.MaxMinutes) {
			week++
			weekMinutes = 0
			weekModules = 0
		}

		out = append(out, ScheduledModule{Module: m, Week: week})
		placed[m.ID] = true
		weekMinutes += m.DurationMin
		weekModules++
	}

	return out
}

// prereqsPlaced reports whether every prerequisite of m that is part
// of the scheduled set has already been placed. Prerequisites outside
// the set (missing catalog references) never block.
func prereqsPlaced(m *domain.Module, inSet, placed map[string]bool) bool {
	for _, pid := range m.Prerequisites {
		if inSet[pid] && !placed[pid] {
			return false
		}
	}
	return true
}
