package main

import (
	"github.com/aretw0/recipebook/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List registered recipe names",
	RunE: func(cmd *cobra.Command, args []string) error {
		asMarkdown, _ := cmd.Flags().GetBool("markdown")
		return cli.List(cmd.OutOrStdout(), cfg, args, asMarkdown)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("markdown", false, "print the names as a Markdown list")
}
