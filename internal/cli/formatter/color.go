package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierStyle returns the style for a readiness tier.
func TierStyle(t domain.Tier) lipgloss.Style {
	switch t {
	case domain.TierA:
		return StyleGreen
	case domain.TierB:
		return StyleBlue
	case domain.TierC:
		return StyleYellow
	case domain.TierD:
		return StyleRed
	default:
		return StyleDim
	}
}

// PriorityIndicator returns a colored priority marker such as "● URGENT".
func PriorityIndicator(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return StyleRed.Render("● URGENT")
	case domain.PriorityHigh:
		return StyleYellow.Render("● HIGH")
	case domain.PriorityMedium:
		return StyleBlue.Render("● MEDIUM")
	case domain.PriorityLow:
		return StyleDim.Render("● LOW")
	default:
		return StyleDim.Render("●")
	}
}

// CategoryLabel returns a colored short label for a module category.
func CategoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryFundamentals:
		return StyleBlue.Render("fundamentals")
	case domain.CategoryRepair:
		return StyleRed.Render("repair")
	case domain.CategoryFinance:
		return StyleGreen.Render("finance")
	case domain.CategoryAction:
		return StylePurple.Render("action")
	default:
		return StyleDim.Render(string(c))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
