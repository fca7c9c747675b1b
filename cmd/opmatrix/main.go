package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/opmatrix/internal/config"
	"github.com/njchilds90/opmatrix/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "opmatrix",
	Short: "Operator indicator matrices for + - * / % ^",
	Long: `opmatrix looks up the fixed 5x5 indicator matrix associated with an
arithmetic operator at a given scale, renders it, and serves the same
lookups over HTTP for agent frameworks.

Defined tables: every operator at scale 1, multiply at scale 2, add at scale 3.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		// config init must be able to replace an unreadable or invalid file.
		if cmd == configInitCmd {
			cfg = config.DefaultConfig()
		} else if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "opmatrix.yaml", "Path to YAML config")

	rootCmd.AddCommand(getCmd, glyphCmd, listCmd, serveCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
