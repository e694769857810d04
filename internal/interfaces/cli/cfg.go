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

func newCfgCommand() *cobra.Command {
	var (
		configsFile string
		outFile     string
		clearFirst  bool
		skipCatalog bool
		assumeYes   bool
	)

	cmd := &cobra.Command{
		Use:   "cfg",
		Short: "Assemble zone configuration commands from a cfg table",
		Long: "Read the cfg-membership YAML, check every referenced zone against\n" +
			"the catalog zone table, and emit cfgCreate/cfgAdd commands plus the\n" +
			"enable command for the active configuration.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runCfg(newContext(), configsFile, outFile, clearFirst, skipCatalog, assumeYes)
		},
	}

	cmd.Flags().StringVarP(&configsFile, "configs", "f", "configs.yaml", "Cfg-membership table YAML")
	cmd.Flags().StringVarP(&outFile, "out", "o", "cfg.txt", "Output script file")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "Prefix the script with cfgClear/cfgDisable")
	cmd.Flags().BoolVar(&skipCatalog, "no-catalog", false, "Do not update the catalog cfg table")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing catalog cfg table without asking")

	return cmd
}

func runCfg(ctx *Context, configsFile, outFile string, clearFirst, skipCatalog, assumeYes bool) {
	configs, err := persistence.LoadConfigs(configsFile)
	if err != nil {
		fatal("Error loading cfg table: %v", err)
	}

	catalog, err := ctx.catalogStore().Load()
	if err != nil {
		fatal("Error loading catalog: %v", err)
	}

	validator := service.NewValidator(catalog)
	report := validator.ValidateConfigs(configsFile, configs)
	finishReport(report)

	active := service.EffectiveActive(configs)
	content := script.EmitConfigs("Switch config commands", configs, active, clearFirst).Render()
	if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
		fatal("Error writing %s: %v", outFile, err)
	}

	if !skipCatalog {
		updateCatalog(ctx, assumeYes, func(c catalogUpdate) {
			c.Configs(configs)
		})
	}

	logger.Info("cfg script written", "file", outFile, "configs", len(configs))
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("%d cfg records written to %s", len(configs), outFile)))
}
