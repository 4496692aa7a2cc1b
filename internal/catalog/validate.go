package catalog

import (
	"fmt"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// ValidateSchema checks a catalog schema for structural errors before
// conversion. Returns every error found (empty slice when valid).
//
// Unknown prerequisite ids are deliberately NOT an error here: the
// engine tolerates missing references at runtime, and catalogs are
// allowed to ship forward references to modules that were retired.
func ValidateSchema(schema *Schema) []error {
	var errs []error

	if schema.Version == "" {
		errs = append(errs, fmt.Errorf("catalog version is required"))
	}
	if len(schema.Modules) == 0 {
		errs = append(errs, fmt.Errorf("at least one module is required"))
	}

	seen := map[string]bool{}
	for i, m := range schema.Modules {
		prefix := fmt.Sprintf("module[%d]", i)
		if m.ID != "" {
			prefix = fmt.Sprintf("module[%d] (%s)", i, m.ID)
		}

		if m.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, m.ID))
		}
		seen[m.ID] = true

		if !domain.ValidCategories[m.Category] {
			errs = append(errs, fmt.Errorf("%s: invalid category %q", prefix, m.Category))
		}
		if !domain.ValidPriorities[m.Priority] {
			errs = append(errs, fmt.Errorf("%s: invalid priority %q", prefix, m.Priority))
		}
		if !domain.ValidDifficulties[m.Difficulty] {
			errs = append(errs, fmt.Errorf("%s: invalid difficulty %q", prefix, m.Difficulty))
		}
		if m.DurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s: duration_min must be positive", prefix))
		}
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", prefix))
		}
		if m.Content == "" {
			errs = append(errs, fmt.Errorf("%s: content is required", prefix))
		}
		for _, pid := range m.Prerequisites {
			if pid == m.ID {
				errs = append(errs, fmt.Errorf("%s: module lists itself as a prerequisite", prefix))
			}
		}
		for j, ai := range m.ActionItems {
			if ai.Text == "" {
				errs = append(errs, fmt.Errorf("%s: action_item[%d]: text is required", prefix, j))
			}
		}
		errs = append(errs, validateConditions(prefix, m.Conditions)...)
	}

	return errs
}

func validateConditions(prefix string, c *ConditionSchema) []error {
	if c == nil {
		return nil
	}
	var errs []error

	if c.MinTier != nil && !domain.ValidTiers[*c.MinTier] {
		errs = append(errs, fmt.Errorf("%s: conditions.min_tier: invalid tier %q", prefix, *c.MinTier))
	}
	if c.MaxTier != nil && !domain.ValidTiers[*c.MaxTier] {
		errs = append(errs, fmt.Errorf("%s: conditions.max_tier: invalid tier %q", prefix, *c.MaxTier))
	}
	if c.MinUtilization != nil && *c.MinUtilization < 0 {
		errs = append(errs, fmt.Errorf("%s: conditions.min_utilization must not be negative", prefix))
	}
	if c.MinScore != nil && c.MaxScore != nil && *c.MinScore > *c.MaxScore {
		errs = append(errs, fmt.Errorf("%s: conditions.min_score (%v) exceeds max_score (%v)", prefix, *c.MinScore, *c.MaxScore))
	}
	if c.MinBureauSpread != nil && *c.MinBureauSpread < 0 {
		errs = append(errs, fmt.Errorf("%s: conditions.min_bureau_spread must not be negative", prefix))
	}

	return errs
}
