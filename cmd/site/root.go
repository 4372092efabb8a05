package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"personal-site/internal/di"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "site",
		Short:         "Personal site: notes viewer with a Game of Life background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newRenderCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	application, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("application runtime error: %w", err)
	}
	return nil
}
