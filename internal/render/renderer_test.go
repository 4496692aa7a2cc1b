package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_PlaceholderSubstitution(t *testing.T) {
	vars := Vars{
		"name":    String("Capital One Quicksilver"),
		"percent": Number(82),
	}
	got := Render("Pay down {{name}} (currently at {{percent}}%).", vars)
	assert.Equal(t, "Pay down Capital One Quicksilver (currently at 82%).", got)
}

func TestRender_UnknownVariableRendersEmpty(t *testing.T) {
	got := Render("Spread: {{bureauSpread}} points", Vars{})
	assert.Equal(t, "Spread: points", got)
	assert.NotContains(t, got, "{{")
}

func TestRender_ConditionalBlockKept(t *testing.T) {
	vars := Vars{
		"hasNextTier": Boolean(true),
		"nextTier":    String("B"),
	}
	got := Render("Your tier.{{#hasNextTier}} Next stop: tier {{nextTier}}.{{/hasNextTier}}", vars)
	assert.Equal(t, "Your tier. Next stop: tier B.", got)
}

func TestRender_ConditionalBlockRemoved(t *testing.T) {
	tests := []struct {
		name string
		vars Vars
	}{
		{"absent variable", Vars{}},
		{"false boolean", Vars{"hasNextTier": Boolean(false)}},
		{"empty string", Vars{"hasNextTier": String("")}},
		{"zero number", Vars{"hasNextTier": Number(0)}},
		{"literal false", Vars{"hasNextTier": String("false")}},
		{"literal zero", Vars{"hasNextTier": String("0")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render("Before. {{#hasNextTier}}Hidden text.{{/hasNextTier}} After.", tt.vars)
			assert.Equal(t, "Before. After.", got)
		})
	}
}

func TestRender_TwoBlocksIndependent(t *testing.T) {
	vars := Vars{"isTopTier": Boolean(true), "hasNextTier": Boolean(false)}
	tmpl := "{{#isTopTier}}Top of the ladder.{{/isTopTier}}{{#hasNextTier}}Keep climbing.{{/hasNextTier}}"
	assert.Equal(t, "Top of the ladder.", Render(tmpl, vars))
}

func TestRender_CollapsesWhitespaceLeftByRemovedBlocks(t *testing.T) {
	got := Render("Start.  {{#gone}} middle {{/gone}}  End.", Vars{})
	assert.Equal(t, "Start. End.", got)
}

func TestRender_OrphanMarkersNeverLeak(t *testing.T) {
	tmpls := []string{
		"{{#open}}never closed",
		"stray close {{/open}} here",
		"{{#a}}text{{/b}} mismatch",
	}
	for _, tmpl := range tmpls {
		got := Render(tmpl, Vars{"open": Boolean(true), "a": Boolean(true)})
		assert.NotContains(t, got, "{{#")
		assert.NotContains(t, got, "{{/")
	}
}

func TestRender_EmptyVarTableIsSafe(t *testing.T) {
	tmpl := "{{#x}}a{{/x}} {{y}} {{#z}}{{w}}{{/z}}"
	assert.NotPanics(t, func() {
		got := Render(tmpl, nil)
		assert.Equal(t, "", got)
	})
}

func TestRender_Deterministic(t *testing.T) {
	vars := Vars{"a": Number(1.5), "b": Boolean(true), "c": String("x")}
	tmpl := "{{a}} {{#b}}{{c}}{{/b}}"
	first := Render(tmpl, vars)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(tmpl, vars))
	}
}

func TestValue_StringForms(t *testing.T) {
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "true", Boolean(true).String())
	assert.Equal(t, "false", Boolean(false).String())
	assert.Equal(t, "hi", String("hi").String())
}

func TestValue_Truthiness(t *testing.T) {
	assert.False(t, String("").Truthy())
	assert.False(t, String("false").Truthy())
	assert.False(t, String("0").Truthy())
	assert.False(t, Number(0).Truthy())
	assert.False(t, Boolean(false).Truthy())
	assert.True(t, Number(0.01).Truthy())
	assert.True(t, String("no").Truthy())
	assert.True(t, Boolean(true).Truthy())
}

func TestRender_SingleNewlinePreserved(t *testing.T) {
	got := Render("line one\nline two", Vars{})
	assert.True(t, strings.Contains(got, "\n"))
}
