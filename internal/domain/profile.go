package domain

// Factor is one labeled scorecard factor (e.g. "High utilization").
type Factor struct {
	Label  string
	Impact FactorImpact
}

// Scorecard is the aggregate readiness view of a user's credit.
// Numeric fields default to zero when the upstream normalizer could
// not supply them; the engine never treats that as an error.
type Scorecard struct {
	Score            float64
	Tier             Tier
	CreditScore      int
	Utilization      float64
	TotalDebt        float64
	TotalCreditLimit float64
	DerogatoryCount  int
	TradelineCount   int
	Factors          []Factor
}

// RevolvingAccount is one high-utilization revolving account.
type RevolvingAccount struct {
	Name        string
	Balance     float64
	Limit       float64
	Utilization float64
}

// TradelineProfile holds facts derived from individual tradelines.
// It is nil when the upstream collaborator delivered no tradeline
// data; tradeline-gated conditions fail closed in that case.
type TradelineProfile struct {
	IsRenter       bool
	HasMortgage    bool
	HasAutoLoan    bool
	HasStudentLoan bool

	// HighUtilizationAccounts is ranked by utilization, highest first.
	HighUtilizationAccounts []RevolvingAccount

	RevolvingBalance   float64
	RevolvingLimit     float64
	MonthlyDebtPayment float64
}

// Upgrade is a recommended investment from the external upgrade
// catalog. Read-only input used to compute derived template variables.
type Upgrade struct {
	ID             string
	Name           string
	Cost           float64
	AnnualSavings  float64
	CO2ReductionKg float64
}

// Profile is the engine's sole input besides the catalog. It is owned
// by the caller and read-only to the engine.
type Profile struct {
	Scorecard  Scorecard
	Tradelines *TradelineProfile

	// BureauScores maps bureau key to score; nil means that bureau
	// returned no data.
	BureauScores map[string]*int

	Upgrades []Upgrade
}

// ValidBureauScores returns the bureaus that reported a usable score
// (non-nil and positive).
func (p *Profile) ValidBureauScores() map[string]int {
	out := make(map[string]int, len(p.BureauScores))
	for bureau, score := range p.BureauScores {
		if score != nil && *score > 0 {
			out[bureau] = *score
		}
	}
	return out
}

// TopUtilizationAccount returns the highest-utilization revolving
// account, or false when no tradeline data or no flagged accounts
// exist.
func (p *Profile) TopUtilizationAccount() (RevolvingAccount, bool) {
	if p.Tradelines == nil || len(p.Tradelines.HighUtilizationAccounts) == 0 {
		return RevolvingAccount{}, false
	}
	return p.Tradelines.HighUtilizationAccounts[0], true
}
