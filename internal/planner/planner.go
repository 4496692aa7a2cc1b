// Package planner is the engine's front door: it wires the variable
// builder, eligibility filter, prerequisite resolver, scheduler and
// renderer into a single pure pipeline from profile to plan.
package planner

import (
	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/eligibility"
	"github.com/amandalowe/creditcoach/internal/profilevars"
	"github.com/amandalowe/creditcoach/internal/render"
	"github.com/amandalowe/creditcoach/internal/scheduler"
)

// BuildPlan produces a personalized study plan. The same catalog,
// profile and caps always yield byte-identical output; randomness and
// wall-clock time never enter the pipeline.
func BuildPlan(catalog *domain.Catalog, profile *domain.Profile, caps scheduler.WeekCaps) *domain.Plan {
	vars := profilevars.Build(profile)

	var eligible []*domain.Module
	for _, m := range catalog.Modules() {
		if eligibility.Eligible(m.Conditions, profile) {
			eligible = append(eligible, m)
		}
	}

	working := scheduler.ResolvePrerequisites(eligible, catalog)
	scheduled := scheduler.Schedule(working, caps)

	plan := &domain.Plan{
		Entries: make([]domain.PlanEntry, 0, len(scheduled)),
	}
	for _, sm := range scheduled {
		m := sm.Module
		plan.Entries = append(plan.Entries, domain.PlanEntry{
			ModuleID:         m.ID,
			Week:             sm.Week,
			Category:         m.Category,
			Priority:         m.Priority,
			Difficulty:       m.Difficulty,
			DurationMin:      m.DurationMin,
			Title:            render.Render(m.Title, vars),
			Highlight:        render.Render(m.Highlight, vars),
			Content:          render.Render(m.Content, vars),
			Actions:          render.Actions(m.ActionItems, vars),
			Relevance:        render.Render(m.Relevance, vars),
			RelatedUpgradeID: m.RelatedUpgradeID,
		})
		plan.TotalMinutes += m.DurationMin
		if sm.Week > plan.WeekCount {
			plan.WeekCount = sm.Week
		}
	}
	plan.ModuleCount = len(plan.Entries)

	return plan
}
