package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Schema is the top-level JSON structure of a catalog data file.
type Schema struct {
	Version string         `json:"version"`
	Modules []ModuleSchema `json:"modules"`
}

// ModuleSchema defines one curriculum module in the catalog file.
type ModuleSchema struct {
	ID            string           `json:"id"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"`
	Difficulty    string           `json:"difficulty"`
	DurationMin   int              `json:"duration_min"`
	Prerequisites []string         `json:"prerequisites,omitempty"`
	Conditions    *ConditionSchema `json:"conditions,omitempty"`

	Title       string             `json:"title"`
	Highlight   string             `json:"highlight"`
	Content     string             `json:"content"`
	ActionItems []ActionItemSchema `json:"action_items,omitempty"`
	Relevance   string             `json:"relevance,omitempty"`

	RelatedUpgradeID string `json:"related_upgrade_id,omitempty"`
}

// ConditionSchema holds the sparse eligibility predicate. Absent
// fields are wildcards.
type ConditionSchema struct {
	MinScore *float64 `json:"min_score,omitempty"`
	MaxScore *float64 `json:"max_score,omitempty"`

	MinCreditScore *int `json:"min_credit_score,omitempty"`
	MaxCreditScore *int `json:"max_credit_score,omitempty"`

	MinUtilization *float64 `json:"min_utilization,omitempty"`
	MaxUtilization *float64 `json:"max_utilization,omitempty"`

	MinDerogatory *int `json:"min_derogatory,omitempty"`
	MaxDerogatory *int `json:"max_derogatory,omitempty"`

	MinTradelines *int `json:"min_tradelines,omitempty"`
	MaxTradelines *int `json:"max_tradelines,omitempty"`

	MinTier *string `json:"min_tier,omitempty"`
	MaxTier *string `json:"max_tier,omitempty"`

	MinBureauSpread *int  `json:"min_bureau_spread,omitempty"`
	HasBureauData   *bool `json:"has_bureau_data,omitempty"`

	IsRenter                *bool `json:"is_renter,omitempty"`
	HasMortgage             *bool `json:"has_mortgage,omitempty"`
	HasAutoLoan             *bool `json:"has_auto_loan,omitempty"`
	HasStudentLoan          *bool `json:"has_student_loan,omitempty"`
	HasHighUtilizationCards *bool `json:"has_high_utilization_cards,omitempty"`

	HasNegativeFactor string `json:"has_negative_factor,omitempty"`
}

// ActionItemSchema defines one templated action item.
type ActionItemSchema struct {
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Impact   string `json:"impact,omitempty"`
}

// ParseSchema parses raw catalog JSON.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return &schema, nil
}

// LoadSchema reads and parses a catalog JSON file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}
