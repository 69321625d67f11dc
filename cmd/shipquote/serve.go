package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"shipquote/internal/application"
	"shipquote/internal/config"
	"shipquote/pkg/logx"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with its probe and metrics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			log, err := application.NewLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			slog.SetDefault(log)

			if err := application.Run(cmd.Context(), cfg, log); err != nil {
				log.Error("application failed", logx.Error(err))
				return err
			}

			log.Info("application stopped")

			return nil
		},
	}
}
