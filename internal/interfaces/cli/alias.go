package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/domain/service"
	"github.com/sanops/zonectl/internal/infrastructure/persistence"
	"github.com/sanops/zonectl/internal/logger"
	"github.com/sanops/zonectl/internal/script"
)

func newAliasCommand() *cobra.Command {
	var (
		devicesFile string
		outFile     string
		loose       bool
		skipCatalog bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Derive alias create commands from the device table",
		Long: "Read the device CSV, validate names and WWNs, and emit one\n" +
			"aliCreate command per row in input order.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAlias(newContext(), devicesFile, outFile, loose, skipCatalog, assumeYes)
		},
	}

	cmd.Flags().StringVarP(&devicesFile, "devices", "f", "devices.csv", "Device table CSV")
	cmd.Flags().StringVarP(&outFile, "out", "o", "aliases.txt", "Output script file")
	cmd.Flags().BoolVar(&loose, "loose", false, "Accept WWNs in any formatting with 16 hex digits")
	cmd.Flags().BoolVar(&skipCatalog, "no-catalog", false, "Do not update the catalog alias table")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing catalog alias table without asking")

	return cmd
}

func runAlias(ctx *Context, devicesFile, outFile string, loose, skipCatalog, assumeYes bool) {
	records, loadReport, err := persistence.LoadDevices(devicesFile)
	if err != nil {
		fatal("Error loading device table: %v", err)
	}

	dv := &service.DeviceValidator{Mode: wwnMode(loose)}
	ports, report := dv.Validate(devicesFile, records)
	loadReport.Merge(report)
	finishReport(loadReport)

	aliases := service.DeriveAliases(ports)
	content := script.EmitAliases("Alias create commands", aliases).Render()

	if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
		fatal("Error writing %s: %v", outFile, err)
	}

	if !skipCatalog {
		updateCatalog(ctx, assumeYes, func(c catalogUpdate) {
			c.Aliases(aliases)
		})
	}

	logger.Info("alias script written", "file", outFile, "aliases", len(aliases))
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("%d alias records written to %s", len(aliases), outFile)))
}
