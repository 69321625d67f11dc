package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shipquote/internal/application"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          application.Name,
		Short:        "Quote shipments described in free-text inquiry e-mails",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newQuoteCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
