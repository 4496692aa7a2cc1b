package profileio

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// LaxFloat is a float64 that tolerates sloppy upstream exports: JSON
// numbers, numeric strings ("42.5", " 610 "), null, and garbage all
// decode without error. Anything unparseable becomes zero, matching
// the engine's treatment of missing scorecard fields.
type LaxFloat float64

func (f *LaxFloat) UnmarshalJSON(data []byte) error {
	*f = LaxFloat(coerceFloat(data))
	return nil
}

// LaxInt is the integer counterpart of LaxFloat. Fractional input is
// truncated toward zero.
type LaxInt int

func (n *LaxInt) UnmarshalJSON(data []byte) error {
	*n = LaxInt(int(coerceFloat(data)))
	return nil
}

func coerceFloat(data []byte) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0
		}
		v, err := strconv.ParseFloat(trimSpaceString(s), 64)
		if err != nil {
			return 0
		}
		return v
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0
	}
	return v
}

func trimSpaceString(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}

// ProfileSchema is the top-level JSON structure of a profile file.
// Every section except the scorecard is optional; the engine treats
// absent data as wildcards or fail-closed predicates downstream.
type ProfileSchema struct {
	Scorecard    ScorecardSchema    `json:"scorecard"`
	Tradelines   *TradelinesSchema  `json:"tradelines,omitempty"`
	BureauScores map[string]*LaxInt `json:"bureau_scores,omitempty"`
	Upgrades     []UpgradeSchema    `json:"upgrades,omitempty"`
}

// ScorecardSchema carries the aggregate credit view. The tier field is
// optional; when absent or unrecognized it is derived from the score.
type ScorecardSchema struct {
	Score            LaxFloat       `json:"score"`
	Tier             string         `json:"tier,omitempty"`
	CreditScore      LaxInt         `json:"credit_score"`
	Utilization      LaxFloat       `json:"utilization"`
	TotalDebt        LaxFloat       `json:"total_debt"`
	TotalCreditLimit LaxFloat       `json:"total_credit_limit"`
	DerogatoryCount  LaxInt         `json:"derogatory_count"`
	TradelineCount   LaxInt         `json:"tradeline_count"`
	Factors          []FactorSchema `json:"factors,omitempty"`
}

// FactorSchema is one labeled scorecard factor.
type FactorSchema struct {
	Label  string `json:"label"`
	Impact string `json:"impact"`
}

// TradelinesSchema carries per-tradeline derived facts.
type TradelinesSchema struct {
	IsRenter       bool `json:"is_renter"`
	HasMortgage    bool `json:"has_mortgage"`
	HasAutoLoan    bool `json:"has_auto_loan"`
	HasStudentLoan bool `json:"has_student_loan"`

	HighUtilizationAccounts []RevolvingAccountSchema `json:"high_utilization_accounts,omitempty"`

	RevolvingBalance   LaxFloat `json:"revolving_balance"`
	RevolvingLimit     LaxFloat `json:"revolving_limit"`
	MonthlyDebtPayment LaxFloat `json:"monthly_debt_payment"`
}

// RevolvingAccountSchema is one revolving account flagged for high
// utilization.
type RevolvingAccountSchema struct {
	Name        string   `json:"name"`
	Balance     LaxFloat `json:"balance"`
	Limit       LaxFloat `json:"limit"`
	Utilization LaxFloat `json:"utilization"`
}

// UpgradeSchema is one recommended upgrade from the upgrade catalog.
type UpgradeSchema struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Cost           LaxFloat `json:"cost"`
	AnnualSavings  LaxFloat `json:"annual_savings"`
	CO2ReductionKg LaxFloat `json:"co2_reduction_kg"`
}
