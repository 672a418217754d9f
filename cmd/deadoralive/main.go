package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/deadoralive/checker/internal/checker"
	"github.com/deadoralive/checker/internal/client"
	"github.com/deadoralive/checker/internal/config"
	"github.com/deadoralive/checker/internal/guard"
	"github.com/deadoralive/checker/internal/logging"
	"github.com/deadoralive/checker/internal/probe"
)

var (
	flagURL    string
	flagAPIKey string
	flagPort   int
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   "deadoralive",
	Short: "Check a client site's links and report the results back",
	Long: `deadoralive fetches the resources a client site wants checked,
probes each resource's URL, and posts dead-or-alive results back to
the site. The site must implement the deadoralive API (for example, a
CKAN site with ckanext-deadoralive installed).

Run it from cron or a loop to keep checking continuously; each
invocation performs exactly one pass.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagURL, "url", "", "client site base URL (required unless set in --config)")
	rootCmd.Flags().StringVar(&flagAPIKey, "apikey", "", "API key sent in the Authorization header")
	rootCmd.Flags().IntVar(&flagPort, "port", config.DefaultPort, "localhost port used as a single-instance guard")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML config file")
}

func run(cmd *cobra.Command, args []string) (err error) {
	cfg := config.FromEnv()
	if flagConfig != "" {
		cfg, err = cfg.WithFile(flagConfig)
		if err != nil {
			return err
		}
	}
	if flagURL != "" {
		cfg.URL = flagURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cfg.URL == "" {
		return errors.New("--url is required")
	}

	lock, err := guard.Acquire(cfg.Port)
	if err != nil {
		if errors.Is(err, guard.ErrPortInUse) {
			return fmt.Errorf("port %d is already in use.\n"+
				"Is there another instance of deadoralive already running?\n"+
				"To run multiple instances at once use the --port <num> option", cfg.Port)
		}
		return err
	}
	defer func() {
		err = multierr.Append(err, lock.Close())
	}()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer func() {
		// stderr sync fails on some platforms; not worth surfacing
		_ = logger.Sync()
	}()

	api := client.New(cfg.URL, cfg.APIKey, cfg.HTTPTimeout)
	prober := probe.NewHTTPChecker(cfg.HTTPTimeout)
	runner := checker.NewRunner(logger, api, api, prober, api)

	logger.Info("cycle_started", zap.String("url", api.BaseURL))
	if err := runner.Run(context.Background()); err != nil {
		return err
	}
	logger.Info("cycle_finished")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
