package main

import (
	"fmt"

	"github.com/aretw0/recipebook"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of recipebook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "recipebook version %s\n", recipebook.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
