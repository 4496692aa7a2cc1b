package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amandalowe/creditcoach/internal/domain"
)

func TestConvertSchema_OrderIndexFollowsFileOrder(t *testing.T) {
	schema := &Schema{
		Version: "test",
		Modules: []ModuleSchema{
			{ID: "a", Category: "fundamentals", Priority: "high", Difficulty: "beginner", DurationMin: 10, Title: "A", Content: "a"},
			{ID: "b", Category: "repair", Priority: "low", Difficulty: "beginner", DurationMin: 10, Title: "B", Content: "b"},
			{ID: "c", Category: "action", Priority: "medium", Difficulty: "advanced", DurationMin: 10, Title: "C", Content: "c"},
		},
	}

	cat := ConvertSchema(schema)
	require.Equal(t, 3, cat.Len())

	for i, id := range []string{"a", "b", "c"} {
		m, ok := cat.Get(id)
		require.True(t, ok)
		assert.Equal(t, i, m.OrderIndex)
	}
}

func TestConvertSchema_Conditions(t *testing.T) {
	minUtil := 0.5
	minTier := "C"
	hasCards := true

	schema := &Schema{
		Version: "test",
		Modules: []ModuleSchema{{
			ID: "m", Category: "repair", Priority: "urgent", Difficulty: "intermediate",
			DurationMin: 30, Title: "M", Content: "m",
			Conditions: &ConditionSchema{
				MinUtilization:          &minUtil,
				MinTier:                 &minTier,
				HasHighUtilizationCards: &hasCards,
				HasNegativeFactor:       "Collections on record",
			},
		}},
	}

	cat := ConvertSchema(schema)
	m, ok := cat.Get("m")
	require.True(t, ok)

	require.NotNil(t, m.Conditions.MinUtilization)
	assert.Equal(t, 0.5, *m.Conditions.MinUtilization)
	require.NotNil(t, m.Conditions.MinTier)
	assert.Equal(t, domain.TierC, *m.Conditions.MinTier)
	require.NotNil(t, m.Conditions.HasHighUtilizationCards)
	assert.True(t, *m.Conditions.HasHighUtilizationCards)
	assert.Equal(t, "Collections on record", m.Conditions.HasNegativeFactor)
	assert.Nil(t, m.Conditions.MaxTier)
	assert.Nil(t, m.Conditions.MinScore)
}

func TestConvertSchema_NilConditionsBecomeWildcard(t *testing.T) {
	cat := ConvertSchema(validSchema())
	m, ok := cat.Get("m1")
	require.True(t, ok)
	assert.Equal(t, domain.Condition{}, m.Conditions)
}

func TestConvertSchema_ActionItems(t *testing.T) {
	schema := validSchema()
	schema.Modules[0].ActionItems = []ActionItemSchema{
		{Text: "Do the thing", Priority: "Today", Impact: "Big"},
		{Text: "Do the other thing", Priority: "This week"},
	}

	cat := ConvertSchema(schema)
	m, _ := cat.Get("m1")
	require.Len(t, m.ActionItems, 2)
	assert.Equal(t, "Do the thing", m.ActionItems[0].Text)
	assert.Equal(t, "Big", m.ActionItems[0].Impact)
	assert.Empty(t, m.ActionItems[1].Impact)
}
