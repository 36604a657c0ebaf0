package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/numeral"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of numeral",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("numeral version %s\n", strings.TrimSpace(numeral.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
