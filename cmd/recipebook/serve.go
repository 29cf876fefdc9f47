package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/recipebook/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [files...]",
	Short: "Serve recipes over HTTP",
	Long:  `Loads the recipe books and exposes a read-only JSON API plus Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.Serve(ctx, cmd.OutOrStdout(), cfg, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
	_ = v.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}
