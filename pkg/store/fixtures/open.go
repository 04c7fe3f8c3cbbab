package fixtures

import (
	"context"
	"fmt"

	"github.com/de-tools/bureau-dashboard/pkg/config"
)

// OpenSource builds the Source selected by fixtures.source.
func OpenSource(ctx context.Context, cfg config.FixturesConfig, basePath string) (Source, error) {
	switch cfg.Source {
	case config.SourceDir:
		return NewDirSource(cfg.Dir), nil
	case config.SourceHTTP:
		return NewHTTPSource(nil, cfg.BaseURL, basePath)
	case config.SourceS3:
		return NewS3SourceFromEnv(ctx, cfg.Region, cfg.Bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown fixtures source %q", cfg.Source)
	}
}
