package cli

import (
	"fmt"
	"os"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/logger"
)

type catalogUpdate struct {
	catalog *entity.Catalog
}

func (c catalogUpdate) Aliases(aliases []entity.Alias) { c.catalog.MergeAliases(aliases) }
func (c catalogUpdate) Zones(zones []entity.Zone)      { c.catalog.MergeZones(zones) }
func (c catalogUpdate) Configs(cfgs []entity.ZoneConfig) {
	c.catalog.MergeConfigs(cfgs)
}

// updateCatalog applies a table replacement to the persisted catalog. An
// existing catalog is only replaced after confirmation unless --yes was
// given.
func updateCatalog(ctx *Context, assumeYes bool, apply func(catalogUpdate)) {
	store := ctx.catalogStore()

	if _, err := os.Stat(store.Path()); err == nil && !assumeYes {
		if !Confirm(fmt.Sprintf("Update catalog %s with this run's tables?", store.Path()), true) {
			logger.Info("catalog update skipped", "path", store.Path())
			return
		}
	}

	catalog, err := store.Load()
	if err != nil {
		fatal("Error loading catalog: %v", err)
	}

	apply(catalogUpdate{catalog})

	if err := store.Save(catalog); err != nil {
		fatal("Error saving catalog: %v", err)
	}

	logger.Debug("catalog updated", "path", store.Path())
}
