package main

import (
	"github.com/aretw0/numeral/internal/cli"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively, one per line",
	Long: `Starts a read-eval-print loop on standard input.
On a terminal a banner and prompt are shown; piped input is processed silently,
which makes the command usable as a filter. With --json, each input line may be a
JSON string or {"expression": "..."} and each answer is one JSON object.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")

		ctx, stop := cli.NewSignalContext(cmd.Context())
		defer stop()

		_, err := cli.RunREPL(ctx, cli.REPLOptions{
			Options: commonOptions(cmd),
			JSON:    jsonMode,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")

	// A bare `numeral` starts the REPL.
	rootCmd.RunE = replCmd.RunE
	rootCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
}
