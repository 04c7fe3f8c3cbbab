package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/bureau-dashboard/pkg/config"
	"github.com/de-tools/bureau-dashboard/pkg/runtime/terminal"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/de-tools/bureau-dashboard/pkg/store/fixtures"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	cfgPath string
	dataDir string
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Open:   openController,
		Output: os.Stdout,
	})
	cli.Root().PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the dashboard config file (default is ./dashboard.yaml when present)")
	cli.Root().PersistentFlags().StringVar(&dataDir, "dir", "",
		"Read fixtures from this directory, overriding fixtures.source")

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openController(ctx context.Context) (dashboard.Controller, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.Fixtures.Source = config.SourceDir
		cfg.Fixtures.Dir = dataDir
	}

	source, err := fixtures.OpenSource(ctx, cfg.Fixtures, cfg.Server.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures source: %w", err)
	}

	if cfg.Fixtures.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Fixtures.LoadTimeout)
		defer cancel()
	}

	docs, err := fixtures.NewLoader(source).Load(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.NewController(fixtures.NewReadySnapshot(docs)), nil
}
