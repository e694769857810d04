package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/domain/entity"
	"github.com/sanops/zonectl/internal/domain/service"
	"github.com/sanops/zonectl/internal/infrastructure/persistence"
	"github.com/sanops/zonectl/internal/validation"
)

func newValidateCommand() *cobra.Command {
	var (
		devicesFile string
		zonesFile   string
		configsFile string
		loose       bool
		cableCheck  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate tables without emitting scripts",
		Long: "Run the full validation pass over any combination of device,\n" +
			"zone and cfg tables. Zone and cfg references are checked against\n" +
			"the tables validated earlier in the same run, falling back to the\n" +
			"catalog.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runValidateAll(newContext(), devicesFile, zonesFile, configsFile, loose, cableCheck)
		},
	}

	cmd.Flags().StringVar(&devicesFile, "devices", "", "Device table CSV")
	cmd.Flags().StringVar(&zonesFile, "zones", "", "Zone-membership table YAML")
	cmd.Flags().StringVar(&configsFile, "configs", "", "Cfg-membership table YAML")
	cmd.Flags().BoolVar(&loose, "loose", false, "Accept WWNs in any formatting with 16 hex digits")
	cmd.Flags().BoolVar(&cableCheck, "cable-check", false, "Warn when fabric indicators do not alternate across sorted rows")

	return cmd
}

func runValidateAll(ctx *Context, devicesFile, zonesFile, configsFile string, loose, cableCheck bool) {
	if devicesFile == "" && zonesFile == "" && configsFile == "" {
		fatal("Nothing to validate: give at least one of --devices, --zones, --configs")
	}

	catalog, err := ctx.catalogStore().Load()
	if err != nil {
		fatal("Error loading catalog: %v", err)
	}

	combined := validation.NewReport("")

	if devicesFile != "" {
		records, loadReport, err := persistence.LoadDevices(devicesFile)
		if err != nil {
			fatal("Error loading device table: %v", err)
		}
		dv := &service.DeviceValidator{Mode: wwnMode(loose), CableCheck: cableCheck}
		ports, report := dv.Validate(devicesFile, records)
		loadReport.Merge(report)
		combined.Merge(loadReport)
		if !loadReport.HasErrors() {
			catalog = &entity.Catalog{
				Aliases: service.DeriveAliases(ports),
				Zones:   catalog.Zones,
				Configs: catalog.Configs,
			}
		}
	}

	var zones []entity.Zone
	if zonesFile != "" {
		zones, err = persistence.LoadZones(zonesFile)
		if err != nil {
			fatal("Error loading zone table: %v", err)
		}
		validator := service.NewValidator(catalog)
		report := validator.ValidateZones(zonesFile, zones)
		combined.Merge(report)
		if !report.HasErrors() {
			catalog = &entity.Catalog{
				Aliases: catalog.Aliases,
				Zones:   zones,
				Configs: catalog.Configs,
			}
		}
	}

	if configsFile != "" {
		configs, err := persistence.LoadConfigs(configsFile)
		if err != nil {
			fatal("Error loading cfg table: %v", err)
		}
		validator := service.NewValidator(catalog)
		combined.Merge(validator.ValidateConfigs(configsFile, configs))
	}

	finishReport(combined)
	fmt.Println(SuccessStyle.Render("All tables are valid."))
}
