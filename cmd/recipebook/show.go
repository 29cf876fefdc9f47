package main

import (
	"os"

	"github.com/aretw0/recipebook/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a recipe",
	Long:  `Prints a recipe as Markdown, rendered for the terminal when stdout is a TTY.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		styled := !plain && term.IsTerminal(int(os.Stdout.Fd()))
		return cli.Show(cmd.OutOrStdout(), cfg, args[0], nil, styled)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("plain", false, "print raw Markdown even on a terminal")
	showCmd.Flags().String("style", "auto", "render style: auto, dark, light or notty")
	_ = v.BindPFlag("style", showCmd.Flags().Lookup("style"))
}
