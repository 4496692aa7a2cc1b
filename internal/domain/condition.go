package domain

// Condition is the sparse eligibility predicate attached to a module.
// Every non-nil field must hold for the module to be eligible; nil
// fields are wildcards. Numeric bounds are inclusive.
type Condition struct {
	MinScore *float64
	MaxScore *float64

	MinCreditScore *int
	MaxCreditScore *int

	MinUtilization *float64
	MaxUtilization *float64

	MinDerogatory *int
	MaxDerogatory *int

	MinTradelines *int
	MaxTradelines *int

	MinTier *Tier
	MaxTier *Tier

	// Multi-bureau predicates. Both require at least two valid
	// (non-nil, positive) bureau scores to hold.
	MinBureauSpread *int
	HasBureauData   *bool

	// Tradeline-derived predicates. These fail closed when the
	// profile carries no tradeline data at all.
	IsRenter                *bool
	HasMortgage             *bool
	HasAutoLoan             *bool
	HasStudentLoan          *bool
	HasHighUtilizationCards *bool

	// HasNegativeFactor requires a factor with this exact label and
	// negative impact in the scorecard factor list.
	HasNegativeFactor string
}

// RequiresTradelines reports whether the condition references any
// tradeline-derived fact.
func (c Condition) RequiresTradelines() bool {
	return c.IsRenter != nil ||
		c.HasMortgage != nil ||
		c.HasAutoLoan != nil ||
		c.HasStudentLoan != nil ||
		c.HasHighUtilizationCards != nil
}
