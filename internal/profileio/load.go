// Package profileio reads and writes profile files. Parsing is
// deliberately forgiving: upstream exporters emit numbers as strings
// often enough that strict decoding would reject real-world files, so
// unparseable numeric fields coerce to zero instead of failing.
package profileio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// Parse decodes raw profile JSON into a domain profile.
func Parse(data []byte) (*domain.Profile, error) {
	var schema ProfileSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return convert(&schema), nil
}

// Load reads and decodes a profile file.
func Load(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Save writes a profile back out as indented JSON, the format Load
// accepts. Used by the interactive profile builder.
func Save(path string, p *domain.Profile) error {
	data, err := json.MarshalIndent(toSchema(p), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func convert(s *ProfileSchema) *domain.Profile {
	p := &domain.Profile{
		Scorecard: domain.Scorecard{
			Score:            float64(s.Scorecard.Score),
			CreditScore:      int(s.Scorecard.CreditScore),
			Utilization:      float64(s.Scorecard.Utilization),
			TotalDebt:        float64(s.Scorecard.TotalDebt),
			TotalCreditLimit: float64(s.Scorecard.TotalCreditLimit),
			DerogatoryCount:  int(s.Scorecard.DerogatoryCount),
			TradelineCount:   int(s.Scorecard.TradelineCount),
		},
	}

	tier := domain.Tier(s.Scorecard.Tier)
	if !domain.ValidTiers[string(tier)] {
		tier = domain.TierForScore(p.Scorecard.Score)
	}
	p.Scorecard.Tier = tier

	for _, f := range s.Scorecard.Factors {
		p.Scorecard.Factors = append(p.Scorecard.Factors, domain.Factor{
			Label:  f.Label,
			Impact: domain.FactorImpact(f.Impact),
		})
	}

	if s.Tradelines != nil {
		tl := &domain.TradelineProfile{
			IsRenter:           s.Tradelines.IsRenter,
			HasMortgage:        s.Tradelines.HasMortgage,
			HasAutoLoan:        s.Tradelines.HasAutoLoan,
			HasStudentLoan:     s.Tradelines.HasStudentLoan,
			RevolvingBalance:   float64(s.Tradelines.RevolvingBalance),
			RevolvingLimit:     float64(s.Tradelines.RevolvingLimit),
			MonthlyDebtPayment: float64(s.Tradelines.MonthlyDebtPayment),
		}
		for _, a := range s.Tradelines.HighUtilizationAccounts {
			tl.HighUtilizationAccounts = append(tl.HighUtilizationAccounts, domain.RevolvingAccount{
				Name:        a.Name,
				Balance:     float64(a.Balance),
				Limit:       float64(a.Limit),
				Utilization: float64(a.Utilization),
			})
		}
		p.Tradelines = tl
	}

	if len(s.BureauScores) > 0 {
		p.BureauScores = make(map[string]*int, len(s.BureauScores))
		for bureau, score := range s.BureauScores {
			if score == nil {
				p.BureauScores[bureau] = nil
				continue
			}
			v := int(*score)
			p.BureauScores[bureau] = &v
		}
	}

	for _, u := range s.Upgrades {
		p.Upgrades = append(p.Upgrades, domain.Upgrade{
			ID:             u.ID,
			Name:           u.Name,
			Cost:           float64(u.Cost),
			AnnualSavings:  float64(u.AnnualSavings),
			CO2ReductionKg: float64(u.CO2ReductionKg),
		})
	}

	return p
}

func toSchema(p *domain.Profile) *ProfileSchema {
	s := &ProfileSchema{
		Scorecard: ScorecardSchema{
			Score:            LaxFloat(p.Scorecard.Score),
			Tier:             string(p.Scorecard.Tier),
			CreditScore:      LaxInt(p.Scorecard.CreditScore),
			Utilization:      LaxFloat(p.Scorecard.Utilization),
			TotalDebt:        LaxFloat(p.Scorecard.TotalDebt),
			TotalCreditLimit: LaxFloat(p.Scorecard.TotalCreditLimit),
			DerogatoryCount:  LaxInt(p.Scorecard.DerogatoryCount),
			TradelineCount:   LaxInt(p.Scorecard.TradelineCount),
		},
	}
	for _, f := range p.Scorecard.Factors {
		s.Scorecard.Factors = append(s.Scorecard.Factors, FactorSchema{
			Label:  f.Label,
			Impact: string(f.Impact),
		})
	}
	if p.Tradelines != nil {
		tl := &TradelinesSchema{
			IsRenter:           p.Tradelines.IsRenter,
			HasMortgage:        p.Tradelines.HasMortgage,
			HasAutoLoan:        p.Tradelines.HasAutoLoan,
			HasStudentLoan:     p.Tradelines.HasStudentLoan,
			RevolvingBalance:   LaxFloat(p.Tradelines.RevolvingBalance),
			RevolvingLimit:     LaxFloat(p.Tradelines.RevolvingLimit),
			MonthlyDebtPayment: LaxFloat(p.Tradelines.MonthlyDebtPayment),
		}
		for _, a := range p.Tradelines.HighUtilizationAccounts {
			tl.HighUtilizationAccounts = append(tl.HighUtilizationAccounts, RevolvingAccountSchema{
				Name:        a.Name,
				Balance:     LaxFloat(a.Balance),
				Limit:       LaxFloat(a.Limit),
				Utilization: LaxFloat(a.Utilization),
			})
		}
		s.Tradelines = tl
	}
	if len(p.BureauScores) > 0 {
		s.BureauScores = make(map[string]*LaxInt, len(p.BureauScores))
		for bureau, score := range p.BureauScores {
			if score == nil {
				s.BureauScores[bureau] = nil
				continue
			}
			v := LaxInt(*score)
			s.BureauScores[bureau] = &v
		}
	}
	for _, u := range p.Upgrades {
		s.Upgrades = append(s.Upgrades, UpgradeSchema{
			ID:             u.ID,
			Name:           u.Name,
			Cost:           LaxFloat(u.Cost),
			AnnualSavings:  LaxFloat(u.AnnualSavings),
			CO2ReductionKg: LaxFloat(u.CO2ReductionKg),
		})
	}
	return s
}
