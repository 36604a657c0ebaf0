package main

import (
	"os"

	"github.com/aretw0/numeral/internal/cli"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:     "convert <numeral>",
	Short:   "Convert a numeral between Roman and Arabic",
	Example: "  numeral convert XIV\n  numeral convert 2026",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Convert(args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
