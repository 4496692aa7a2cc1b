// Package catalog loads and validates the curriculum data file. The
// catalog is read once at process start, converted to its immutable
// domain form, and never mutated afterwards. A schema violation here
// is the one legitimate fatal error in the system.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/amandalowe/creditcoach/internal/domain"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// Load reads, validates and converts a catalog file. When path is
// empty the embedded default catalog is used.
func Load(path string) (*domain.Catalog, error) {
	if path == "" {
		schema, err := ParseSchema(defaultCatalogJSON)
		if err != nil {
			return nil, err
		}
		return fromSchema(schema, "embedded catalog")
	}
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}
	return fromSchema(schema, path)
}

func fromSchema(schema *Schema, source string) (*domain.Catalog, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%s failed validation: %w", source, errors.Join(errs...))
	}
	return ConvertSchema(schema), nil
}
