package main

import (
	"os"

	"github.com/aretw0/numeral/internal/cli"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression...>",
	Short: "Evaluate a single expression",
	Example: `  numeral eval 1 + 2
  numeral eval "VI / III"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := cli.NewSignalContext(cmd.Context())
		defer stop()
		return cli.Eval(ctx, commonOptions(cmd), args, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
