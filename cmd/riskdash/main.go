package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"riskdash/cmd/riskdash/dashboard"
	"riskdash/cmd/riskdash/ui"
	"riskdash/internal/config"
	"riskdash/internal/logging"
	"riskdash/internal/prediction"
)

var (
	// Global flags
	configPath string
	endpoint   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive dashboard.
var rootCmd = &cobra.Command{
	Use:   "riskdash",
	Short: "Credit risk segmentation dashboard",
	Long: `riskdash is a terminal dashboard for the credit risk segmentation API.

It collects loan-applicant attributes in a grouped form, sends them to
the prediction service in one request, and renders the returned risk
segment as a colored card.

Run without arguments to start the interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if endpoint != "" {
			cfg.API.BaseURL = endpoint
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}

		// The dashboard owns the terminal, so its logger must not
		// write to stderr.
		if cmd == cmd.Root() {
			logger, err = logging.NewForTUI(cfg.Logging)
		} else {
			logger, err = logging.New(cfg.Logging)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := cfg.APITimeout()
		if err != nil {
			return err
		}
		client := prediction.NewClient(cfg.API.BaseURL, timeout)
		styles := ui.NewStyles(ui.ResolveTheme(cfg.UI.Theme))

		logger.Info("starting dashboard",
			zap.String("endpoint", client.Endpoint()),
			zap.String("theme", cfg.UI.Theme))

		return dashboard.Run(client, styles, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "prediction API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
