package cmd

import (
	"fmt"
	"os"

	"capstone-timeline/pkg/config"
	"capstone-timeline/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string

	appConfig *config.Config
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "capstone-timeline",
	Short: "Content API for the capstone timeline site",
	Long: `capstone-timeline turns the folder layout under the public directory
(albums/, team/, timeline/<month>/<milestone>/) into the JSON the timeline
front-end renders. Nothing is stored: every request re-reads the folders.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "site config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd, exportCmd)
}
