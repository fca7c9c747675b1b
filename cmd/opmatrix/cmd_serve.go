package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/opmatrix/internal/server"
)

var addrFlag string

// serveCmd runs the HTTP tool server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve opmatrix tools over HTTP",
	Long: `Starts the HTTP tool server.

  POST /tool   — execute a tool call
  GET  /schema — tool schema for agent registration
  GET  /health — health check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting tool server", zap.String("addr", cfg.Server.Addr))
	return server.New(cfg, logger).ListenAndServe(ctx)
}
