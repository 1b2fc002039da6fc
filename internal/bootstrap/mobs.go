package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/mt2web/mt2web/internal/mob"
	"github.com/mt2web/mt2web/internal/validation"
)

// LoadMobCatalog reads the mob catalog and validates it against its schema
func LoadMobCatalog(path string) (*mob.Catalog, error) {
	catalog, err := mob.Load(path, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadMobs, err)
	}

	slog.Info(LogMsgMobCatalogLoaded,
		"path", path,
		"version", catalog.Version(),
		"mobs", len(catalog.List()))

	return catalog, nil
}
