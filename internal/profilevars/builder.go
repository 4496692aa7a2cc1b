// Package profilevars derives the flat template-variable table from a
// user profile. It is the single source of truth for every variable
// name the catalog templates may reference: a name not produced here
// renders empty, never errors.
//
// Build is a pure function. Amounts are currency-formatted, ratios
// become whole percentages, and boolean flags gate conditional blocks.
package profilevars

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/render"
)

// Financing figures use the tier's estimated rate over a fixed
// five-year term for three representative amounts.
const financingTermMonths = 60

var financingAmounts = []struct {
	Name   string
	Amount float64
}{
	{"monthlyPayment5k", 5000},
	{"monthlyPayment15k", 15000},
	{"monthlyPayment30k", 30000},
}

// renterFriendlyUpgradeIDs and homeUpgradeIDs are the fixed
// id-membership lists behind the upgrade count variables.
var renterFriendlyUpgradeIDs = map[string]bool{
	"smart-thermostat":  true,
	"led-lighting":      true,
	"energy-monitor":    true,
	"smart-power-strip": true,
	"low-flow-fixtures": true,
}

var homeUpgradeIDs = map[string]bool{
	"solar-panels":     true,
	"heat-pump":        true,
	"attic-insulation": true,
	"window-upgrade":   true,
	"ev-charger":       true,
}

// displayBureauNames maps bureau keys to their presentation names.
var displayBureauNames = map[string]string{
	domain.BureauTransUnion: "TransUnion",
	domain.BureauEquifax:    "Equifax",
	domain.BureauExperian:   "Experian",
}

// Build derives the full variable table from a profile. Deterministic
// and side-effect free: the same profile always yields the same table.
func Build(p *domain.Profile) render.Vars {
	vars := render.Vars{}

	buildScorecardVars(vars, p)
	buildTierVars(vars, p)
	buildUtilizationVars(vars, p)
	buildTradelineVars(vars, p)
	buildBureauVars(vars, p)
	buildFinancingVars(vars, p)
	buildUpgradeVars(vars, p)

	return vars
}

func buildScorecardVars(vars render.Vars, p *domain.Profile) {
	sc := p.Scorecard
	vars["score"] = render.Number(math.Round(sc.Score))
	vars["creditScore"] = render.Number(float64(sc.CreditScore))
	vars["totalDebt"] = render.String(Currency(sc.TotalDebt))
	vars["totalCreditLimit"] = render.String(Currency(sc.TotalCreditLimit))
	vars["derogatoryCount"] = render.Number(float64(sc.DerogatoryCount))
	vars["derogatoryPlural"] = render.String(Plural(sc.DerogatoryCount, "mark", "marks"))
	vars["hasDerogatory"] = render.Boolean(sc.DerogatoryCount > 0)
	vars["tradelineCount"] = render.Number(float64(sc.TradelineCount))
	vars["tradelinePlural"] = render.String(Plural(sc.TradelineCount, "account", "accounts"))
}

func buildTierVars(vars render.Vars, p *domain.Profile) {
	tier := p.Scorecard.Tier
	if tier == "" {
		tier = domain.TierForScore(p.Scorecard.Score)
	}
	vars["tierName"] = render.String(string(tier))
	vars["isTopTier"] = render.Boolean(tier == domain.TierA)

	next, threshold, ok := domain.NextTier(tier)
	vars["hasNextTier"] = render.Boolean(ok)
	if ok {
		gap := math.Ceil(threshold - p.Scorecard.Score)
		if gap < 0 {
			gap = 0
		}
		vars["nextTierName"] = render.String(string(next))
		vars["nextTierGap"] = render.Number(gap)
		vars["nextTierGapPlural"] = render.String(Plural(int(gap), "point", "points"))
	}
}

func buildUtilizationVars(vars render.Vars, p *domain.Profile) {
	sc := p.Scorecard
	vars["utilizationPercent"] = render.Number(Percent(sc.Utilization))

	// Prefer tradeline-derived revolving figures; fall back to the
	// scorecard aggregates when no tradeline data exists.
	balance, limit := sc.TotalDebt, sc.TotalCreditLimit
	if p.Tradelines != nil {
		balance, limit = p.Tradelines.RevolvingBalance, p.Tradelines.RevolvingLimit
	}
	vars["revolvingBalance"] = render.String(Currency(balance))
	vars["revolvingLimit"] = render.String(Currency(limit))

	paydown := balance - 0.30*limit
	if paydown < 0 {
		paydown = 0
	}
	vars["paydownTo30"] = render.String(Currency(paydown))
	vars["needsPaydown"] = render.Boolean(paydown > 0)
}

func buildTradelineVars(vars render.Vars, p *domain.Profile) {
	tl := p.Tradelines
	vars["hasTradelineData"] = render.Boolean(tl != nil)
	vars["isRenter"] = render.Boolean(tl != nil && tl.IsRenter)
	vars["hasMortgage"] = render.Boolean(tl != nil && tl.HasMortgage)
	vars["hasAutoLoan"] = render.Boolean(tl != nil && tl.HasAutoLoan)
	vars["hasStudentLoan"] = render.Boolean(tl != nil && tl.HasStudentLoan)

	hasCards := tl != nil && len(tl.HighUtilizationAccounts) > 0
	vars["hasHighUtilizationCards"] = render.Boolean(hasCards)

	if tl != nil {
		vars["monthlyDebtPayment"] = render.String(Currency(tl.MonthlyDebtPayment))
		vars["highUtilizationCardCount"] = render.Number(float64(len(tl.HighUtilizationAccounts)))
	}

	if card, ok := p.TopUtilizationAccount(); ok {
		vars["topCardName"] = render.String(card.Name)
		vars["topCardBalance"] = render.String(Currency(card.Balance))
		vars["topCardLimit"] = render.String(Currency(card.Limit))
		vars["topCardUtilizationPercent"] = render.Number(Percent(card.Utilization))

		paydown := card.Balance - 0.50*card.Limit
		if paydown < 0 {
			paydown = 0
		}
		vars["topCardPaydownTo50"] = render.String(Currency(paydown))
	}
}

func buildBureauVars(vars render.Vars, p *domain.Profile) {
	valid := p.ValidBureauScores()
	multi := len(valid) >= 2
	vars["hasBureauData"] = render.Boolean(multi)
	if !multi {
		return
	}

	// Sorted key walk keeps highest/lowest deterministic on ties.
	keys := make([]string, 0, len(valid))
	for k := range valid {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lowKey, highKey := keys[0], keys[0]
	for _, k := range keys[1:] {
		if valid[k] < valid[lowKey] {
			lowKey = k
		}
		if valid[k] > valid[highKey] {
			highKey = k
		}
	}

	vars["bureauSpread"] = render.Number(float64(valid[highKey] - valid[lowKey]))
	vars["highestBureau"] = render.String(bureauDisplayName(highKey))
	vars["highestBureauScore"] = render.Number(float64(valid[highKey]))
	vars["lowestBureau"] = render.String(bureauDisplayName(lowKey))
	vars["lowestBureauScore"] = render.Number(float64(valid[lowKey]))
}

func buildFinancingVars(vars render.Vars, p *domain.Profile) {
	tier := p.Scorecard.Tier
	if tier == "" {
		tier = domain.TierForScore(p.Scorecard.Score)
	}
	apr := domain.TierAPR(tier)
	vars["financingRatePercent"] = render.Number(math.Round(apr*1000) / 10)
	for _, fa := range financingAmounts {
		vars[fa.Name] = render.String(Currency(MonthlyPayment(fa.Amount, apr, financingTermMonths)))
	}
}

func buildUpgradeVars(vars render.Vars, p *domain.Profile) {
	vars["upgradeCount"] = render.Number(float64(len(p.Upgrades)))

	renterFriendly := lo.CountBy(p.Upgrades, func(u domain.Upgrade) bool {
		return renterFriendlyUpgradeIDs[u.ID]
	})
	home := lo.CountBy(p.Upgrades, func(u domain.Upgrade) bool {
		return homeUpgradeIDs[u.ID]
	})
	vars["renterFriendlyCount"] = render.Number(float64(renterFriendly))
	vars["hasRenterFriendlyUpgrades"] = render.Boolean(renterFriendly > 0)
	vars["homeUpgradeCount"] = render.Number(float64(home))
	vars["hasHomeUpgrades"] = render.Boolean(home > 0)

	totalCost := lo.SumBy(p.Upgrades, func(u domain.Upgrade) float64 { return u.Cost })
	totalSavings := lo.SumBy(p.Upgrades, func(u domain.Upgrade) float64 { return u.AnnualSavings })
	totalCO2 := lo.SumBy(p.Upgrades, func(u domain.Upgrade) float64 { return u.CO2ReductionKg })
	vars["totalUpgradeCost"] = render.String(Currency(totalCost))
	vars["totalAnnualSavings"] = render.String(Currency(totalSavings))
	vars["totalCO2ReductionKg"] = render.Number(math.Round(totalCO2))
}

func bureauDisplayName(key string) string {
	if name, ok := displayBureauNames[key]; ok {
		return name
	}
	return key
}
