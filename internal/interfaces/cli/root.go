package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	catalogPath string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "zonectl",
	Short: "Brocade SAN zoning configuration generator",
	Long: "Zonectl derives Brocade Fibre Channel alias, zone and cfg command\n" +
		"scripts from administrator-maintained device, zone and config tables.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(newContext())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "C", "zonectl-catalog.yaml", "Catalog file tracking alias/zone/cfg tables between runs")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newAliasCommand())
	rootCmd.AddCommand(newZoneCommand())
	rootCmd.AddCommand(newCfgCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newWWNCommand())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
