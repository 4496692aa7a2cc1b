package service

import (
	"context"

	"github.com/amandalowe/creditcoach/internal/app"
	"github.com/amandalowe/creditcoach/internal/domain"
)

type catalogService struct {
	catalog *domain.Catalog
}

// NewCatalogService creates the catalog introspection use case.
func NewCatalogService(catalog *domain.Catalog) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) Describe(_ context.Context) (*app.CatalogSummary, error) {
	summary := &app.CatalogSummary{
		Version:     s.catalog.Version,
		ModuleCount: s.catalog.Len(),
		ByCategory:  make(map[domain.Category]int, 4),
		Modules:     s.catalog.Modules(),
	}
	for _, m := range s.catalog.Modules() {
		summary.ByCategory[m.Category]++
	}
	return summary, nil
}
