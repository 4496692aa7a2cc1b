package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/amandalowe/creditcoach/internal/domain"
)

// FormatPlan renders a full plan: a summary line, then each week's
// modules with their highlight and action items.
func FormatPlan(plan *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header("Your Plan"))
	b.WriteString("\n")

	if len(plan.Entries) == 0 {
		b.WriteString(Dim("No modules matched your profile. Nothing to study right now.\n"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s over %s\n\n",
		Bold(fmt.Sprintf("%d modules", plan.ModuleCount)),
		Dim(fmt.Sprintf("(%s total)", formatMinutes(plan.TotalMinutes))),
		Bold(fmt.Sprintf("%d weeks", plan.WeekCount)),
	))

	byWeek := lo.GroupBy(plan.Entries, func(e domain.PlanEntry) int { return e.Week })
	for week := 1; week <= plan.WeekCount; week++ {
		entries := byWeek[week]
		if len(entries) == 0 {
			continue
		}

		minutes := lo.SumBy(entries, func(e domain.PlanEntry) int { return e.DurationMin })
		b.WriteString(StyleHeader.Render(fmt.Sprintf("Week %d", week)))
		b.WriteString(Dim(fmt.Sprintf("  %s\n", formatMinutes(minutes))))

		for _, e := range entries {
			b.WriteString(formatEntry(e))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatEntry(e domain.PlanEntry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s  %s %s %s\n",
		PriorityIndicator(e.Priority),
		Bold(e.Title),
		CategoryLabel(e.Category),
		Dim(fmt.Sprintf("· %s · %s", e.Difficulty, formatMinutes(e.DurationMin))),
	))

	if e.Highlight != "" {
		b.WriteString(indent(StyleFg.Render(e.Highlight), 5))
	}
	for _, a := range e.Actions {
		line := fmt.Sprintf("%s %s", StyleGreen.Render("▸"), a.Text)
		if a.Priority != "" {
			line += Dim(" (" + a.Priority + ")")
		}
		b.WriteString(indent(line, 5))
	}
	if e.Relevance != "" {
		b.WriteString(indent(Dim("Why: "+e.Relevance), 5))
	}

	return b.String()
}

func formatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dmin", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

func indent(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}
