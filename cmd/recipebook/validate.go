package main

import (
	"github.com/aretw0/recipebook/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check recipe books",
	Long:  `Loads each recipe book and reports, per recipe, whether it would be registered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.OutOrStdout(), cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
