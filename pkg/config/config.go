package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "DASHBOARD"
	DefaultFileName = "dashboard"

	SourceDir  = "dir"
	SourceHTTP = "http"
	SourceS3   = "s3"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	BasePath        string        `mapstructure:"basePath"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type FixturesConfig struct {
	Source      string        `mapstructure:"source"`
	Dir         string        `mapstructure:"dir"`
	BaseURL     string        `mapstructure:"baseURL"`
	Bucket      string        `mapstructure:"bucket"`
	Prefix      string        `mapstructure:"prefix"`
	Region      string        `mapstructure:"region"`
	LoadTimeout time.Duration `mapstructure:"loadTimeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.basePath", "")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)

	v.SetDefault("fixtures.source", SourceDir)
	v.SetDefault("fixtures.dir", "data")
	v.SetDefault("fixtures.baseURL", "")
	v.SetDefault("fixtures.bucket", "")
	v.SetDefault("fixtures.prefix", "")
	v.SetDefault("fixtures.region", "")
	v.SetDefault("fixtures.loadTimeout", 30*time.Second)

	v.SetDefault("logging.level", "info")
}

// LoadConfig reads defaults, then an optional config file, then DASHBOARD_*
// environment variables. An explicit path must exist; without one a
// dashboard.yaml in the working directory is used when present.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
	}

	cfg.Server.BasePath = NormalizeBasePath(cfg.Server.BasePath)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	f := c.Fixtures
	switch f.Source {
	case SourceDir:
		if f.Dir == "" {
			return errors.New("fixtures.dir is required for the dir source")
		}
	case SourceHTTP:
		if f.BaseURL == "" {
			return errors.New("fixtures.baseURL is required for the http source")
		}
	case SourceS3:
		if f.Bucket == "" {
			return errors.New("fixtures.bucket is required for the s3 source")
		}
	default:
		return fmt.Errorf("unknown fixtures.source %q (want dir, http or s3)", f.Source)
	}

	if f.LoadTimeout < 0 {
		return errors.New("fixtures.loadTimeout must not be negative")
	}
	return nil
}

// NormalizeBasePath returns "" for the root, otherwise a path with a leading
// slash and no trailing slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
