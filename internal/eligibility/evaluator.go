// Package eligibility decides whether a user profile satisfies a
// module's condition record. Evaluation is conjunctive over the
// specified fields, short-circuits on the first failure, and has no
// side effects; it is called once per catalog module per plan request.
package eligibility

import (
	"github.com/amandalowe/creditcoach/internal/domain"
)

// Eligible reports whether the profile satisfies every specified
// field of the condition. Unspecified (nil) fields are wildcards.
// Numeric bounds are inclusive. Tradeline-derived predicates fail
// closed when the profile carries no tradeline data.
func Eligible(cond domain.Condition, p *domain.Profile) bool {
	sc := p.Scorecard

	if cond.MinScore != nil && sc.Score < *cond.MinScore {
		return false
	}
	if cond.MaxScore != nil && sc.Score > *cond.MaxScore {
		return false
	}
	if cond.MinCreditScore != nil && sc.CreditScore < *cond.MinCreditScore {
		return false
	}
	if cond.MaxCreditScore != nil && sc.CreditScore > *cond.MaxCreditScore {
		return false
	}
	if cond.MinUtilization != nil && sc.Utilization < *cond.MinUtilization {
		return false
	}
	if cond.MaxUtilization != nil && sc.Utilization > *cond.MaxUtilization {
		return false
	}
	if cond.MinDerogatory != nil && sc.DerogatoryCount < *cond.MinDerogatory {
		return false
	}
	if cond.MaxDerogatory != nil && sc.DerogatoryCount > *cond.MaxDerogatory {
		return false
	}
	if cond.MinTradelines != nil && sc.TradelineCount < *cond.MinTradelines {
		return false
	}
	if cond.MaxTradelines != nil && sc.TradelineCount > *cond.MaxTradelines {
		return false
	}
	if cond.MinTier != nil && domain.TierRank(sc.Tier) < domain.TierRank(*cond.MinTier) {
		return false
	}
	if cond.MaxTier != nil && domain.TierRank(sc.Tier) > domain.TierRank(*cond.MaxTier) {
		return false
	}

	if !bureauFieldsHold(cond, p) {
		return false
	}
	if !tradelineFieldsHold(cond, p) {
		return false
	}

	if cond.HasNegativeFactor != "" && !hasNegativeFactor(sc.Factors, cond.HasNegativeFactor) {
		return false
	}

	return true
}

// bureauFieldsHold evaluates the multi-bureau predicates. Fewer than
// two valid scores is a definite fail for both, never a vacuous pass.
func bureauFieldsHold(cond domain.Condition, p *domain.Profile) bool {
	if cond.HasBureauData == nil && cond.MinBureauSpread == nil {
		return true
	}
	valid := p.ValidBureauScores()
	multi := len(valid) >= 2

	if cond.HasBureauData != nil && *cond.HasBureauData != multi {
		return false
	}
	if cond.MinBureauSpread != nil {
		if !multi {
			return false
		}
		if bureauSpread(valid) < *cond.MinBureauSpread {
			return false
		}
	}
	return true
}

func bureauSpread(scores map[string]int) int {
	first := true
	var lo, hi int
	for _, s := range scores {
		if first {
			lo, hi = s, s
			first = false
			continue
		}
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return hi - lo
}

func tradelineFieldsHold(cond domain.Condition, p *domain.Profile) bool {
	if !cond.RequiresTradelines() {
		return true
	}
	tl := p.Tradelines
	if tl == nil {
		// Fail closed: without tradeline data we cannot assert any
		// tradeline-derived fact, in either direction.
		return false
	}
	if cond.IsRenter != nil && tl.IsRenter != *cond.IsRenter {
		return false
	}
	if cond.HasMortgage != nil && tl.HasMortgage != *cond.HasMortgage {
		return false
	}
	if cond.HasAutoLoan != nil && tl.HasAutoLoan != *cond.HasAutoLoan {
		return false
	}
	if cond.HasStudentLoan != nil && tl.HasStudentLoan != *cond.HasStudentLoan {
		return false
	}
	if cond.HasHighUtilizationCards != nil {
		has := len(tl.HighUtilizationAccounts) > 0
		if has != *cond.HasHighUtilizationCards {
			return false
		}
	}
	return true
}

func hasNegativeFactor(factors []domain.Factor, label string) bool {
	for _, f := range factors {
		if f.Label == label && f.Impact == domain.ImpactNegative {
			return true
		}
	}
	return false
}
