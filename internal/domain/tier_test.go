package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{0, TierD},
		{39.9, TierD},
		{40, TierC},
		{59.9, TierC},
		{60, TierB},
		{79.9, TierB},
		{80, TierA},
		{100, TierA},
		{115, TierA}, // clamped upward, still A
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForScore(tt.score), "score %v", tt.score)
	}
}

func TestNextTier_Ladder(t *testing.T) {
	next, threshold, ok := NextTier(TierD)
	assert.True(t, ok)
	assert.Equal(t, TierC, next)
	assert.Equal(t, 40.0, threshold)

	next, threshold, ok = NextTier(TierB)
	assert.True(t, ok)
	assert.Equal(t, TierA, next)
	assert.Equal(t, 80.0, threshold)

	_, _, ok = NextTier(TierA)
	assert.False(t, ok, "A is the top tier")
}

func TestTierRank_Ordering(t *testing.T) {
	assert.Greater(t, TierRank(TierA), TierRank(TierB))
	assert.Greater(t, TierRank(TierB), TierRank(TierC))
	assert.Greater(t, TierRank(TierC), TierRank(TierD))
	assert.Equal(t, -1, TierRank(Tier("F")))
}

func TestValidBureauScores_FiltersNilAndNonPositive(t *testing.T) {
	tu, eq, zero := 702, 688, 0
	p := &Profile{BureauScores: map[string]*int{
		BureauTransUnion: &tu,
		BureauEquifax:    &eq,
		BureauExperian:   nil,
		"sandbox":        &zero,
	}}
	valid := p.ValidBureauScores()
	assert.Len(t, valid, 2)
	assert.Equal(t, 702, valid[BureauTransUnion])
	assert.Equal(t, 688, valid[BureauEquifax])
}
