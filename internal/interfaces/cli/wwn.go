package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sanops/zonectl/internal/domain/valueobject"
)

func newWWNCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wwn [text]",
		Short: "Normalize a WWN and print its known renderings",
		Long: "Extract the 16 hex digits from any WWN formatting and print the\n" +
			"Brocade, bare, upper-case and VMS renderings. Without an argument\n" +
			"the text is read from a prompt.",
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			text := strings.Join(args, " ")
			if text == "" {
				text = promptLine(os.Stdin, "WWN: ")
			}
			runWWN(text)
		},
	}
	return cmd
}

func promptLine(r io.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func runWWN(text string) {
	wwn, err := valueobject.ParseLoose(text)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(wwn.String())
	fmt.Println(wwn.Bare())
	fmt.Println(wwn.BareUpper())
	fmt.Println(wwn.VMS())
}
