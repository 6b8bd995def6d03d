package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/minerva"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of minerva",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "minerva version %s\n", strings.TrimSpace(minerva.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
