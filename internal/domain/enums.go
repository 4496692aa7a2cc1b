package domain

type Category string

const (
	CategoryFundamentals Category = "fundamentals"
	CategoryRepair       Category = "repair"
	CategoryFinance      Category = "finance"
	CategoryAction       Category = "action"
)

// CategoryOrdinal returns the fixed pacing order: fundamentals come first,
// action items last. Unknown categories sort after everything else.
func CategoryOrdinal(c Category) int {
	switch c {
	case CategoryFundamentals:
		return 0
	case CategoryRepair:
		return 1
	case CategoryFinance:
		return 2
	case CategoryAction:
		return 3
	default:
		return 4
	}
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"fundamentals": true, "repair": true, "finance": true, "action": true,
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityOrdinal returns a sort priority (lower = more urgent).
func PriorityOrdinal(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"urgent": true, "high": true, "medium": true, "low": true,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

type FactorImpact string

const (
	ImpactPositive FactorImpact = "positive"
	ImpactNegative FactorImpact = "negative"
	ImpactNeutral  FactorImpact = "neutral"
)

// Bureau keys used in Profile.BureauScores.
const (
	BureauTransUnion = "transunion"
	BureauEquifax    = "equifax"
	BureauExperian   = "experian"
)
