package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/domain/service"
	"github.com/sanops/zonectl/internal/infrastructure/persistence"
	"github.com/sanops/zonectl/internal/logger"
	"github.com/sanops/zonectl/internal/plan"
)

func newGenerateCommand() *cobra.Command {
	var (
		devicesFile string
		outDir      string
		loose       bool
		cableCheck  bool
		cfgName     string
		clearFirst  bool
		skipCatalog bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the full dual-fabric pipeline",
		Long: "Derive per-fabric alias, zone and cfg scripts from the device CSV:\n" +
			"single-initiator zoning with one zone per initiator/target-node pair,\n" +
			"six output files for a dual A/B fabric installation.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runGenerate(newContext(), devicesFile, outDir, cfgName, loose, cableCheck, clearFirst, skipCatalog, assumeYes)
		},
	}

	cmd.Flags().StringVarP(&devicesFile, "devices", "f", "devices.csv", "Device table CSV")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory for the generated scripts")
	cmd.Flags().BoolVar(&loose, "loose", false, "Accept WWNs in any formatting with 16 hex digits")
	cmd.Flags().BoolVar(&cableCheck, "cable-check", false, "Warn when fabric indicators do not alternate across sorted rows")
	cmd.Flags().StringVar(&cfgName, "cfg-name", "", "Configuration name (default cfg<YYYY-MM-DD>)")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "Prefix cfg scripts with cfgClear/cfgDisable")
	cmd.Flags().BoolVar(&skipCatalog, "no-catalog", false, "Do not update the catalog")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing catalog without asking")

	return cmd
}

func runGenerate(ctx *Context, devicesFile, outDir, cfgName string, loose, cableCheck, clearFirst, skipCatalog, assumeYes bool) {
	records, loadReport, err := persistence.LoadDevices(devicesFile)
	if err != nil {
		fatal("Error loading device table: %v", err)
	}

	dv := &service.DeviceValidator{Mode: wwnMode(loose), CableCheck: cableCheck}
	ports, report := dv.Validate(devicesFile, records)
	loadReport.Merge(report)
	finishReport(loadReport)

	planner := plan.NewPlanner()
	planner.CfgName = cfgName
	planner.ClearFirst = clearFirst

	result := planner.Build(ports)
	if len(result.Artifacts) == 0 {
		fatal("No fabric ports found in %s", devicesFile)
	}

	if err := result.Write(outDir); err != nil {
		fatal("Error writing artifacts: %v", err)
	}

	if !skipCatalog {
		updateCatalog(ctx, assumeYes, func(c catalogUpdate) {
			c.Aliases(result.Aliases)
			c.Zones(result.Zones)
			c.Configs(result.Configs)
		})
	}

	logger.Info("pipeline artifacts written",
		"dir", outDir, "artifacts", len(result.Artifacts),
		"aliases", len(result.Aliases), "zones", len(result.Zones))

	fmt.Println(SuccessStyle.Render("The following files have been generated:"))
	for _, a := range result.Artifacts {
		fmt.Printf("  %s\n", a.Name)
	}
	fmt.Printf("%d records in total were processed\n", len(ports))
}
