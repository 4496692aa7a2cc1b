package domain

// ActionItem is one templated to-do attached to a module.
type ActionItem struct {
	Text     string
	Priority string
	Impact   string
}

// Module is one schedulable unit of curriculum content. Modules are
// defined once in the catalog and never mutated afterwards; all string
// fields except ID may contain template syntax.
type Module struct {
	ID            string
	Category      Category
	Priority      Priority
	Difficulty    Difficulty
	DurationMin   int
	Prerequisites []string
	Conditions    Condition

	Title       string
	Highlight   string
	Content     string
	ActionItems []ActionItem
	Relevance   string

	// RelatedUpgradeID loosely references an entry in the external
	// upgrade-recommendation catalog. No ownership implied.
	RelatedUpgradeID string

	// OrderIndex is the module's position in the catalog file, used
	// as the final deterministic sort tiebreak.
	OrderIndex int
}

// Catalog is the complete, immutable set of curriculum modules.
// Construct it once at startup via NewCatalog and treat it as
// read-only; the engine is a pure function of (profile, catalog).
type Catalog struct {
	Version string
	modules []*Module
	byID    map[string]*Module
}

func NewCatalog(version string, modules []*Module) *Catalog {
	byID := make(map[string]*Module, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}
	return &Catalog{Version: version, modules: modules, byID: byID}
}

// Modules returns all modules in catalog order.
func (c *Catalog) Modules() []*Module {
	return c.modules
}

// Get looks up a module by id.
func (c *Catalog) Get(id string) (*Module, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int {
	return len(c.modules)
}
