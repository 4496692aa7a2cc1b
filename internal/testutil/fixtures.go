package testutil

import (
	"fmt"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithScore(s float64) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.Score = s
		p.Scorecard.Tier = domain.TierForScore(s)
	}
}

func WithTier(t domain.Tier) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.Tier = t
	}
}

func WithCreditScore(s int) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.CreditScore = s
	}
}

func WithUtilization(u float64) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.Utilization = u
	}
}

func WithDerogatory(n int) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.DerogatoryCount = n
	}
}

func WithTradelineCount(n int) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.TradelineCount = n
	}
}

func WithTotals(debt, limit float64) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.TotalDebt = debt
		p.Scorecard.TotalCreditLimit = limit
	}
}

func WithFactors(factors ...domain.Factor) ProfileOption {
	return func(p *domain.Profile) {
		p.Scorecard.Factors = factors
	}
}

func WithTradelines(tl *domain.TradelineProfile) ProfileOption {
	return func(p *domain.Profile) {
		p.Tradelines = tl
	}
}

func WithBureauScores(scores map[string]*int) ProfileOption {
	return func(p *domain.Profile) {
		p.BureauScores = scores
	}
}

func WithUpgrades(upgrades ...domain.Upgrade) ProfileOption {
	return func(p *domain.Profile) {
		p.Upgrades = upgrades
	}
}

// NewTestProfile builds a mid-ladder profile: tier C, moderate
// utilization, no tradeline data, no bureau map. Options override.
func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		Scorecard: domain.Scorecard{
			Score:            55,
			Tier:             domain.TierC,
			CreditScore:      640,
			Utilization:      0.45,
			TotalDebt:        12000,
			TotalCreditLimit: 20000,
			TradelineCount:   4,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Module options
type ModuleOption func(*domain.Module)

func WithCategory(c domain.Category) ModuleOption {
	return func(m *domain.Module) {
		m.Category = c
	}
}

func WithPriority(p domain.Priority) ModuleOption {
	return func(m *domain.Module) {
		m.Priority = p
	}
}

func WithDuration(min int) ModuleOption {
	return func(m *domain.Module) {
		m.DurationMin = min
	}
}

func WithPrereqs(ids ...string) ModuleOption {
	return func(m *domain.Module) {
		m.Prerequisites = ids
	}
}

func WithConditions(c domain.Condition) ModuleOption {
	return func(m *domain.Module) {
		m.Conditions = c
	}
}

func WithTemplates(title, highlight, content string) ModuleOption {
	return func(m *domain.Module) {
		m.Title = title
		m.Highlight = highlight
		m.Content = content
	}
}

func WithActionItems(items ...domain.ActionItem) ModuleOption {
	return func(m *domain.Module) {
		m.ActionItems = items
	}
}

// NewTestModule builds a plain always-eligible fundamentals module.
func NewTestModule(id string, opts ...ModuleOption) *domain.Module {
	m := &domain.Module{
		ID:          id,
		Category:    domain.CategoryFundamentals,
		Priority:    domain.PriorityMedium,
		Difficulty:  domain.DifficultyBeginner,
		DurationMin: 30,
		Title:       fmt.Sprintf("Module %s", id),
		Highlight:   fmt.Sprintf("Highlight for %s", id),
		Content:     fmt.Sprintf("Content for %s.", id),
		Relevance:   "Selected for your profile.",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestCatalog wraps modules into a catalog, assigning order
// indexes from slice position.
func NewTestCatalog(modules ...*domain.Module) *domain.Catalog {
	for i, m := range modules {
		m.OrderIndex = i
	}
	return domain.NewCatalog("test", modules)
}
