package catalog

import (
	"github.com/amandalowe/creditcoach/internal/domain"
)

// ConvertSchema turns a validated schema into the immutable domain
// catalog. Module order in the file becomes the OrderIndex tiebreak
// used by the scheduler's canonical sort.
func ConvertSchema(schema *Schema) *domain.Catalog {
	modules := make([]*domain.Module, 0, len(schema.Modules))
	for i, ms := range schema.Modules {
		m := &domain.Module{
			ID:               ms.ID,
			Category:         domain.Category(ms.Category),
			Priority:         domain.Priority(ms.Priority),
			Difficulty:       domain.Difficulty(ms.Difficulty),
			DurationMin:      ms.DurationMin,
			Prerequisites:    append([]string(nil), ms.Prerequisites...),
			Conditions:       convertConditions(ms.Conditions),
			Title:            ms.Title,
			Highlight:        ms.Highlight,
			Content:          ms.Content,
			Relevance:        ms.Relevance,
			RelatedUpgradeID: ms.RelatedUpgradeID,
			OrderIndex:       i,
		}
		for _, ai := range ms.ActionItems {
			m.ActionItems = append(m.ActionItems, domain.ActionItem{
				Text:     ai.Text,
				Priority: ai.Priority,
				Impact:   ai.Impact,
			})
		}
		modules = append(modules, m)
	}
	return domain.NewCatalog(schema.Version, modules)
}

func convertConditions(c *ConditionSchema) domain.Condition {
	if c == nil {
		return domain.Condition{}
	}
	cond := domain.Condition{
		MinScore:                c.MinScore,
		MaxScore:                c.MaxScore,
		MinCreditScore:          c.MinCreditScore,
		MaxCreditScore:          c.MaxCreditScore,
		MinUtilization:          c.MinUtilization,
		MaxUtilization:          c.MaxUtilization,
		MinDerogatory:           c.MinDerogatory,
		MaxDerogatory:           c.MaxDerogatory,
		MinTradelines:           c.MinTradelines,
		MaxTradelines:           c.MaxTradelines,
		MinBureauSpread:         c.MinBureauSpread,
		HasBureauData:           c.HasBureauData,
		IsRenter:                c.IsRenter,
		HasMortgage:             c.HasMortgage,
		HasAutoLoan:             c.HasAutoLoan,
		HasStudentLoan:          c.HasStudentLoan,
		HasHighUtilizationCards: c.HasHighUtilizationCards,
		HasNegativeFactor:       c.HasNegativeFactor,
	}
	if c.MinTier != nil {
		t := domain.Tier(*c.MinTier)
		cond.MinTier = &t
	}
	if c.MaxTier != nil {
		t := domain.Tier(*c.MaxTier)
		cond.MaxTier = &t
	}
	return cond
}
