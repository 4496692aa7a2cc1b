package domain

// RenderedAction is an action item after template substitution.
type RenderedAction struct {
	Text     string
	Priority string
	Impact   string
}

// PlanEntry is one module scheduled into the plan, with all templated
// text fully rendered.
type PlanEntry struct {
	ModuleID    string
	Week        int
	Category    Category
	Priority    Priority
	Difficulty  Difficulty
	DurationMin int

	Title     string
	Highlight string
	Content   string
	Actions   []RenderedAction
	Relevance string

	RelatedUpgradeID string
}

// Plan is the engine's output: an ordered study plan. Plans are pure
// values built fresh per request; they carry no identity and no
// mutable state.
type Plan struct {
	Entries      []PlanEntry
	WeekCount    int
	TotalMinutes int
	ModuleCount  int
}
