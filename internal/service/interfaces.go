package service

import (
	"github.com/amandalowe/creditcoach/internal/app"
)

// The service package implements the app ports. Aliases keep call
// sites reading against the port names.
type (
	PlanService    = app.PlanUseCase
	HistoryService = app.HistoryUseCase
	CatalogService = app.CatalogUseCase
)
