package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/domain/service"
	"github.com/sanops/zonectl/internal/infrastructure/persistence"
	"github.com/sanops/zonectl/internal/logger"
	"github.com/sanops/zonectl/internal/script"
)

func newZoneCommand() *cobra.Command {
	var (
		zonesFile   string
		devicesFile string
		outFile     string
		loose       bool
		skipCatalog bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Compose zone create commands from a zone table",
		Long: "Read the zone-membership YAML, check every member against the\n" +
			"alias table, and emit zoneCreate/zoneAdd commands. The alias table\n" +
			"comes from the catalog, or is derived fresh when --devices is given.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runZone(newContext(), zonesFile, devicesFile, outFile, loose, skipCatalog, assumeYes)
		},
	}

	cmd.Flags().StringVarP(&zonesFile, "zones", "f", "zones.yaml", "Zone-membership table YAML")
	cmd.Flags().StringVar(&devicesFile, "devices", "", "Derive the alias table from this device CSV instead of the catalog")
	cmd.Flags().StringVarP(&outFile, "out", "o", "zones.txt", "Output script file")
	cmd.Flags().BoolVar(&loose, "loose", false, "Accept WWNs in any formatting with 16 hex digits")
	cmd.Flags().BoolVar(&skipCatalog, "no-catalog", false, "Do not update the catalog zone table")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing catalog zone table without asking")

	return cmd
}

func runZone(ctx *Context, zonesFile, devicesFile, outFile string, loose, skipCatalog, assumeYes bool) {
	zones, err := persistence.LoadZones(zonesFile)
	if err != nil {
		fatal("Error loading zone table: %v", err)
	}

	catalog := loadAliasTable(ctx, devicesFile, loose)

	validator := service.NewValidator(catalog)
	report := validator.ValidateZones(zonesFile, zones)
	finishReport(report)

	content := script.EmitZones("Zone create commands", zones).Render()
	if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
		fatal("Error writing %s: %v", outFile, err)
	}

	if !skipCatalog {
		updateCatalog(ctx, assumeYes, func(c catalogUpdate) {
			c.Zones(zones)
		})
	}

	logger.Info("zone script written", "file", outFile, "zones", len(zones))
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("%d zone records written to %s", len(zones), outFile)))
}

// loadAliasTable returns the catalog whose alias table the zone check runs
// against. With --devices the table is derived from the CSV; derivation
// errors abort before any referential checks run.
func loadAliasTable(ctx *Context, devicesFile string, loose bool) *entity.Catalog {
	if devicesFile == "" {
		catalog, err := ctx.catalogStore().Load()
		if err != nil {
			fatal("Error loading catalog: %v", err)
		}
		// The catalog can be edited by hand, so its alias table gets the
		// same uniqueness checks as a fresh derivation.
		report := service.NewValidator(nil).ValidateAliases(ctx.CatalogPath, catalog.Aliases)
		finishReport(report)
		return catalog
	}

	records, loadReport, err := persistence.LoadDevices(devicesFile)
	if err != nil {
		fatal("Error loading device table: %v", err)
	}
	dv := &service.DeviceValidator{Mode: wwnMode(loose)}
	ports, report := dv.Validate(devicesFile, records)
	loadReport.Merge(report)
	finishReport(loadReport)

	return &entity.Catalog{Aliases: service.DeriveAliases(ports)}
}
