package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var propPriorities = []domain.Priority{
	domain.PriorityUrgent, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow,
}

var propCategories = []domain.Category{
	domain.CategoryFundamentals, domain.CategoryRepair, domain.CategoryFinance, domain.CategoryAction,
}

// TestSchedule_Invariants property-tests the packer over random
// module sets: capacity, uniqueness, and dependency ordering must hold
// for every outcome.
func TestSchedule_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		caps := WeekCaps{
			MaxMinutes: rng.Intn(180) + 30, // 30-209
			MaxModules: rng.Intn(4) + 1,    // 1-4
		}

		n := rng.Intn(12) + 1
		modules := make([]*domain.Module, n)
		for i := range modules {
			id := fmt.Sprintf("m%02d", i)
			opts := []testutil.ModuleOption{
				testutil.WithDuration(rng.Intn(90) + 10),
				testutil.WithPriority(propPriorities[rng.Intn(len(propPriorities))]),
				testutil.WithCategory(propCategories[rng.Intn(len(propCategories))]),
			}
			// Random backward edges keep most chains satisfiable while
			// still exercising dependency placement.
			if i > 0 && rng.Intn(3) == 0 {
				opts = append(opts, testutil.WithPrereqs(fmt.Sprintf("m%02d", rng.Intn(i))))
			}
			modules[i] = testutil.NewTestModule(id, opts...)
		}
		testutil.NewTestCatalog(modules...)

		got := Schedule(modules, caps)

		// Invariant 1: no module scheduled twice.
		seen := map[string]bool{}
		for _, sm := range got {
			assert.False(t, seen[sm.Module.ID], "trial %d: duplicate %s", trial, sm.Module.ID)
			seen[sm.Module.ID] = true
		}

		// Invariant 2: weeks are 1-based and non-decreasing.
		prevWeek := 1
		for _, sm := range got {
			assert.GreaterOrEqual(t, sm.Week, prevWeek, "trial %d: weeks must not rewind", trial)
			assert.GreaterOrEqual(t, sm.Week, 1, "trial %d", trial)
			prevWeek = sm.Week
		}

		// Invariant 3: capacity respected except for a lone oversized
		// module occupying its week by itself.
		byWeek := map[int][]ScheduledModule{}
		for _, sm := range got {
			byWeek[sm.Week] = append(byWeek[sm.Week], sm)
		}
		for week, sms := range byWeek {
			total := 0
			for _, sm := range sms {
				total += sm.Module.DurationMin
			}
			assert.LessOrEqual(t, len(sms), caps.MaxModules,
				"trial %d week %d: module count", trial, week)
			if len(sms) > 1 {
				assert.LessOrEqual(t, total, caps.MaxMinutes,
					"trial %d week %d: duration", trial, week)
			}
		}

		// Invariant 4: a scheduled prerequisite is never in a later
		// week than its dependent.
		weekOf := map[string]int{}
		for _, sm := range got {
			weekOf[sm.Module.ID] = sm.Week
		}
		for _, sm := range got {
			for _, pid := range sm.Module.Prerequisites {
				if pw, ok := weekOf[pid]; ok {
					assert.LessOrEqual(t, pw, sm.Week,
						"trial %d: prereq %s after dependent %s", trial, pid, sm.Module.ID)
				}
			}
		}
	}
}
