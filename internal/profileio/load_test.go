package profileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amandalowe/creditcoach/internal/domain"
)

func TestParse_FullProfile(t *testing.T) {
	data := []byte(`{
		"scorecard": {
			"score": 55,
			"tier": "C",
			"credit_score": 640,
			"utilization": 0.45,
			"total_debt": 12000,
			"total_credit_limit": 20000,
			"derogatory_count": 1,
			"tradeline_count": 4,
			"factors": [
				{"label": "High utilization", "impact": "negative"}
			]
		},
		"tradelines": {
			"is_renter": true,
			"has_student_loan": true,
			"high_utilization_accounts": [
				{"name": "Visa", "balance": 2800, "limit": 4000, "utilization": 0.7}
			],
			"revolving_balance": 2800,
			"revolving_limit": 4000,
			"monthly_debt_payment": 310
		},
		"bureau_scores": {
			"transunion": 652,
			"equifax": null,
			"experian": 641
		},
		"upgrades": [
			{"id": "smart-thermostat", "name": "Smart Thermostat", "cost": 250, "annual_savings": 140, "co2_reduction_kg": 300}
		]
	}`)

	p, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 55.0, p.Scorecard.Score)
	assert.Equal(t, domain.TierC, p.Scorecard.Tier)
	assert.Equal(t, 640, p.Scorecard.CreditScore)
	assert.Equal(t, 1, p.Scorecard.DerogatoryCount)
	require.Len(t, p.Scorecard.Factors, 1)
	assert.Equal(t, domain.ImpactNegative, p.Scorecard.Factors[0].Impact)

	require.NotNil(t, p.Tradelines)
	assert.True(t, p.Tradelines.IsRenter)
	assert.False(t, p.Tradelines.HasMortgage)
	require.Len(t, p.Tradelines.HighUtilizationAccounts, 1)
	assert.Equal(t, "Visa", p.Tradelines.HighUtilizationAccounts[0].Name)

	require.NotNil(t, p.BureauScores[domain.BureauTransUnion])
	assert.Equal(t, 652, *p.BureauScores[domain.BureauTransUnion])
	assert.Nil(t, p.BureauScores[domain.BureauEquifax])

	require.Len(t, p.Upgrades, 1)
	assert.Equal(t, 250.0, p.Upgrades[0].Cost)
}

func TestParse_LaxNumbers(t *testing.T) {
	data := []byte(`{
		"scorecard": {
			"score": "62.5",
			"credit_score": " 610 ",
			"utilization": "not a number",
			"total_debt": null,
			"derogatory_count": "2"
		}
	}`)

	p, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 62.5, p.Scorecard.Score)
	assert.Equal(t, 610, p.Scorecard.CreditScore)
	assert.Equal(t, 0.0, p.Scorecard.Utilization, "garbage coerces to zero")
	assert.Equal(t, 0.0, p.Scorecard.TotalDebt)
	assert.Equal(t, 2, p.Scorecard.DerogatoryCount)
}

func TestParse_TierDerivedFromScore(t *testing.T) {
	tests := []struct {
		name string
		json string
		want domain.Tier
	}{
		{"absent tier", `{"scorecard": {"score": 85}}`, domain.TierA},
		{"invalid tier", `{"scorecard": {"score": 45, "tier": "Platinum"}}`, domain.TierC},
		{"explicit tier wins", `{"scorecard": {"score": 85, "tier": "B"}}`, domain.TierB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Scorecard.Tier)
		})
	}
}

func TestParse_MinimalProfile(t *testing.T) {
	p, err := Parse([]byte(`{"scorecard": {"score": 30}}`))
	require.NoError(t, err)

	assert.Nil(t, p.Tradelines)
	assert.Nil(t, p.BureauScores)
	assert.Empty(t, p.Upgrades)
	assert.Equal(t, domain.TierD, p.Scorecard.Tier)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{broken"))
	assert.Error(t, err)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tu := 702
	original := &domain.Profile{
		Scorecard: domain.Scorecard{
			Score:       71,
			Tier:        domain.TierB,
			CreditScore: 698,
			Utilization: 0.22,
			Factors:     []domain.Factor{{Label: "Low utilization", Impact: domain.ImpactPositive}},
		},
		Tradelines: &domain.TradelineProfile{
			HasMortgage:      true,
			RevolvingBalance: 1500,
			RevolvingLimit:   9000,
		},
		BureauScores: map[string]*int{
			domain.BureauTransUnion: &tu,
			domain.BureauEquifax:    nil,
		},
		Upgrades: []domain.Upgrade{
			{ID: "heat-pump", Name: "Heat Pump", Cost: 9000, AnnualSavings: 900, CO2ReductionKg: 2100},
		},
	}

	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
