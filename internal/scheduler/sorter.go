package scheduler

import (
	"sort"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// CanonicalSort orders modules by the deterministic canonical rules:
// 1. Priority: urgent > high > medium > low
// 2. Category: fundamentals > repair > finance > action
// 3. Catalog position: ascending
//
// The result is a global preference order, not yet dependency-safe;
// Schedule handles dependency placement.
func CanonicalSort(modules []*domain.Module) {
	sort.SliceStable(modules, func(i, j int) bool {
		a, b := modules[i], modules[j]

		pa, pb := domain.PriorityOrdinal(a.Priority), domain.PriorityOrdinal(b.Priority)
		if pa != pb {
			return pa < pb
		}

		ca, cb := domain.CategoryOrdinal(a.Category), domain.CategoryOrdinal(b.Category)
		if ca != cb {
			return ca < cb
		}

		return a.OrderIndex < b.OrderIndex
	})
}
