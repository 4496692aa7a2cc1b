package formatter

import (
	"fmt"
	"strings"

	"github.com/amandalowe/creditcoach/internal/repository"
)

// FormatHistory renders the snapshot list, newest first, with the
// headline figures each run was built from.
func FormatHistory(snapshots []*repository.Snapshot) string {
	var b strings.Builder

	b.WriteString(Header("Plan History"))
	b.WriteString("\n")

	if len(snapshots) == 0 {
		b.WriteString(Dim("No saved plans yet. Run `creditcoach plan --save` to keep one.\n"))
		return b.String()
	}

	for _, s := range snapshots {
		tier := TierStyle(s.Tier).Render(string(s.Tier))
		b.WriteString(fmt.Sprintf("%s  %s\n",
			Bold(s.CreatedAt.Format("2006-01-02 15:04")),
			Dim(s.ID),
		))
		b.WriteString(fmt.Sprintf("  tier %s · score %.0f · %d modules · %d weeks · %s\n",
			tier, s.Score, s.ModuleCount, s.WeekCount, formatMinutes(s.TotalMinutes)))
	}

	return b.String()
}

// FormatSnapshot renders one saved snapshot in full: header figures
// plus the stored plan exactly as it was built.
func FormatSnapshot(s *repository.Snapshot) string {
	var b strings.Builder

	b.WriteString(Header("Saved Plan"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("saved"), Bold(s.CreatedAt.Format("2006-01-02 15:04"))))
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		Dim("built at"),
		TierStyle(s.Tier).Render("tier "+string(s.Tier)),
		Dim(fmt.Sprintf("score %.0f, catalog %s", s.Score, s.CatalogVersion)),
	))
	b.WriteString(FormatPlan(s.Plan))

	return b.String()
}
