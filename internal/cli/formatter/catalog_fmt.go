package formatter

import (
	"fmt"
	"strings"

	"github.com/amandalowe/creditcoach/internal/app"
	"github.com/amandalowe/creditcoach/internal/domain"
)

// FormatCatalogSummary renders the catalog overview for the `catalog`
// command: version, totals, and the module list grouped by category.
func FormatCatalogSummary(summary *app.CatalogSummary) string {
	var b strings.Builder

	b.WriteString(Header("Catalog"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		Bold(fmt.Sprintf("%d modules", summary.ModuleCount)),
		Dim("version "+summary.Version),
	))

	categories := []domain.Category{
		domain.CategoryFundamentals,
		domain.CategoryRepair,
		domain.CategoryFinance,
		domain.CategoryAction,
	}
	for _, cat := range categories {
		if summary.ByCategory[cat] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", CategoryLabel(cat), Dim(fmt.Sprintf("(%d)", summary.ByCategory[cat]))))
		for _, m := range summary.Modules {
			if m.Category != cat {
				continue
			}
			line := fmt.Sprintf("  %-28s %s %s", m.ID, PriorityIndicator(m.Priority), Dim(formatMinutes(m.DurationMin)))
			if len(m.Prerequisites) > 0 {
				line += Dim("  after " + strings.Join(m.Prerequisites, ", "))
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
