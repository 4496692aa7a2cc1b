package domain

// Tier is a readiness grade derived from the 0-100 readiness score.
// Ordering is D < C < B < A.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// tierFloors holds the inclusive lower score bound of each tier.
var tierFloors = []struct {
	Tier  Tier
	Floor float64
}{
	{TierA, 80},
	{TierB, 60},
	{TierC, 40},
	{TierD, 0},
}

// TierRank returns the ordinal rank of a tier (D=0 .. A=3).
// Unknown tiers rank below D.
func TierRank(t Tier) int {
	switch t {
	case TierA:
		return 3
	case TierB:
		return 2
	case TierC:
		return 1
	case TierD:
		return 0
	default:
		return -1
	}
}

// TierForScore maps a readiness score onto the tier ladder.
// Thresholds sit at 40/60/80; scores above 100 still grade as A.
func TierForScore(score float64) Tier {
	for _, tf := range tierFloors {
		if score >= tf.Floor {
			return tf.Tier
		}
	}
	return TierD
}

// NextTier returns the tier above t and the score threshold that
// unlocks it. The second return is false for tier A (and unknowns).
func NextTier(t Tier) (Tier, float64, bool) {
	switch t {
	case TierD:
		return TierC, 40, true
	case TierC:
		return TierB, 60, true
	case TierB:
		return TierA, 80, true
	default:
		return "", 0, false
	}
}

// TierAPR returns the estimated annual financing rate for a tier,
// used for representative monthly-payment figures.
func TierAPR(t Tier) float64 {
	switch t {
	case TierA:
		return 0.069
	case TierB:
		return 0.099
	case TierC:
		return 0.149
	default:
		return 0.199
	}
}

// ValidTiers is the canonical set of accepted tier strings.
var ValidTiers = map[string]bool{"A": true, "B": true, "C": true, "D": true}
