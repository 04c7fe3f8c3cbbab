package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/bureau-dashboard/pkg/config"
	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	"github.com/de-tools/bureau-dashboard/pkg/server"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/de-tools/bureau-dashboard/pkg/store/fixtures"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the bureau scrub dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the dashboard config file (default is ./dashboard.yaml when present)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse logging.level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	metrics.Init()

	source, err := fixtures.OpenSource(ctx, cfg.Fixtures, cfg.Server.BasePath)
	if err != nil {
		return fmt.Errorf("failed to open fixtures source: %w", err)
	}
	logger.Info().Str("source", source.Describe()).Msg("loading dashboard fixtures")

	snapshot := fixtures.NewSnapshot()
	go func() {
		// The error is kept on the snapshot and served by every page.
		_ = snapshot.Run(ctx, fixtures.NewLoader(source), cfg.Fixtures.LoadTimeout)
	}()

	var dataDir string
	if cfg.Fixtures.Source == config.SourceDir {
		dataDir = cfg.Fixtures.Dir
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		BasePath:        cfg.Server.BasePath,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		DataDir:         dataDir,
		Dependencies: server.Dependencies{
			Snapshot:   snapshot,
			Controller: dashboard.NewController(snapshot),
		},
	})

	return api.Start()
}

