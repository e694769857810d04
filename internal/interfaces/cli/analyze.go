package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/analyze"
	"github.com/sanops/zonectl/internal/logger"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		captureFile string
		outFile     string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Extract a device table from captured nsshow output",
		Long: "Parse consolidated Brocade nsshow output and write a device CSV\n" +
			"skeleton. Fill in the name columns before using it with alias or\n" +
			"generate.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runAnalyze(captureFile, outFile)
		},
	}

	cmd.Flags().StringVarP(&captureFile, "capture", "f", "nsshow.txt", "Captured nsshow output")
	cmd.Flags().StringVarP(&outFile, "out", "o", "fabanal.csv", "Output device CSV")

	return cmd
}

func runAnalyze(captureFile, outFile string) {
	in, err := os.Open(captureFile)
	if err != nil {
		fatal("Error opening capture: %v", err)
	}
	defer in.Close()

	entries, err := analyze.ParseCapture(in)
	if err != nil {
		fatal("Error parsing capture: %v", err)
	}
	if len(entries) == 0 {
		fatal("No port entries found in %s", captureFile)
	}

	out, err := os.Create(outFile)
	if err != nil {
		fatal("Error creating %s: %v", outFile, err)
	}
	defer out.Close()

	if err := analyze.WriteCSV(out, entries); err != nil {
		fatal("Error writing %s: %v", outFile, err)
	}

	logger.Info("capture analyzed", "entries", len(entries), "file", outFile)
	fmt.Println(SuccessStyle.Render(fmt.Sprintf("%d port entries written to %s", len(entries), outFile)))
}
