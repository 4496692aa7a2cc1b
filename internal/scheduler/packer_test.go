package scheduler

import (
	"testing"

	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_DependencyNeverScheduledLater(t *testing.T) {
	// "basics" is low priority, "paydown" urgent, yet basics must land
	// in a week <= paydown's week.
	basics := testutil.NewTestModule("basics", testutil.WithPriority(domain.PriorityLow))
	paydown := testutil.NewTestModule("paydown",
		testutil.WithPriority(domain.PriorityUrgent), testutil.WithPrereqs("basics"))
	testutil.NewTestCatalog(basics, paydown)

	got := Schedule([]*domain.Module{basics, paydown}, DefaultWeekCaps())

	require.Len(t, got, 2)
	weeks := map[string]int{}
	order := map[string]int{}
	for i, sm := range got {
		weeks[sm.Module.ID] = sm.Week
		order[sm.Module.ID] = i
	}
	assert.LessOrEqual(t, weeks["basics"], weeks["paydown"])
	assert.Less(t, order["basics"], order["paydown"])
}

func TestSchedule_WeekCapacityByMinutes(t *testing.T) {
	a := testutil.NewTestModule("a", testutil.WithDuration(50))
	b := testutil.NewTestModule("b", testutil.WithDuration(50))
	c := testutil.NewTestModule("c", testutil.WithDuration(50))
	testutil.NewTestCatalog(a, b, c)

	got := Schedule([]*domain.Module{a, b, c}, WeekCaps{MaxMinutes: 120, MaxModules: 5})

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Week)
	assert.Equal(t, 1, got[1].Week)
	assert.Equal(t, 2, got[2].Week, "third 50m module exceeds the 120m cap")
}

func TestSchedule_WeekCapacityByCount(t *testing.T) {
	var modules []*domain.Module
	for _, id := range []string{"a", "b", "c", "d"} {
		modules = append(modules, testutil.NewTestModule(id, testutil.WithDuration(10)))
	}
	testutil.NewTestCatalog(modules...)

	got := Schedule(modules, WeekCaps{MaxMinutes: 120, MaxModules: 3})

	require.Len(t, got, 4)
	assert.Equal(t, 1, got[2].Week)
	assert.Equal(t, 2, got[3].Week, "fourth module overflows the 3-module cap")
}

func TestSchedule_OversizedModuleStillPlacedAlone(t *testing.T) {
	small := testutil.NewTestModule("small", testutil.WithDuration(30))
	huge := testutil.NewTestModule("huge", testutil.WithDuration(300))
	tail := testutil.NewTestModule("tail", testutil.WithDuration(30))
	testutil.NewTestCatalog(small, huge, tail)

	got := Schedule([]*domain.Module{small, huge, tail}, WeekCaps{MaxMinutes: 120, MaxModules: 3})

	require.Len(t, got, 3, "an over-cap module is placed, never rejected")
	byID := map[string]int{}
	for _, sm := range got {
		byID[sm.Module.ID] = sm.Week
	}
	// The oversized module sits in its own week.
	for _, sm := range got {
		if sm.Module.ID == "huge" {
			continue
		}
		assert.NotEqual(t, byID["huge"], sm.Week, "huge must not share week %d", sm.Week)
	}
}

func TestSchedule_UnsatisfiableChainDropped(t *testing.T) {
	ok := testutil.NewTestModule("ok")
	// Cyclic pair: neither can ever be placed.
	x := testutil.NewTestModule("x", testutil.WithPrereqs("y"))
	y := testutil.NewTestModule("y", testutil.WithPrereqs("x"))
	testutil.NewTestCatalog(ok, x, y)

	got := Schedule([]*domain.Module{ok, x, y}, DefaultWeekCaps())

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Module.ID)
}

func TestSchedule_MissingPrereqDoesNotBlock(t *testing.T) {
	m := testutil.NewTestModule("m", testutil.WithPrereqs("not-in-set"))
	testutil.NewTestCatalog(m)

	got := Schedule([]*domain.Module{m}, DefaultWeekCaps())

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Week)
}

func TestSchedule_EmptyInput(t *testing.T) {
	got := Schedule(nil, DefaultWeekCaps())
	assert.Empty(t, got)
}

func TestSchedule_Deterministic(t *testing.T) {
	a := testutil.NewTestModule("a", testutil.WithPriority(domain.PriorityHigh))
	b := testutil.NewTestModule("b", testutil.WithPriority(domain.PriorityHigh))
	c := testutil.NewTestModule("c", testutil.WithPrereqs("a"))
	testutil.NewTestCatalog(a, b, c)

	first := Schedule([]*domain.Module{a, b, c}, DefaultWeekCaps())
	for i := 0; i < 5; i++ {
		again := Schedule([]*domain.Module{a, b, c}, DefaultWeekCaps())
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Module.ID, again[j].Module.ID)
			assert.Equal(t, first[j].Week, again[j].Week)
		}
	}
}
