package main

import (
	"fmt"
	"os"

	"github.com/aretw0/recipebook/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
	v       = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "Recipebook validates and serves declarative recipe books",
	Long: `Recipebook loads recipes described in YAML or JSON recipe books, validates them
and lets you list, show or serve them over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, cfgFile)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./recipebook.yaml or ~/.config/recipebook/recipebook.yaml)")
	rootCmd.PersistentFlags().StringSliceP("file", "f", nil, "recipe book to load (repeatable)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	_ = v.BindPFlag("files", rootCmd.PersistentFlags().Lookup("file"))
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}
