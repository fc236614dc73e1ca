package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT"        default:":8080"`
	GrpcPort        string        `envconfig:"GRPC_PORT"        default:":50051"`
	GrpcEnabled     bool          `envconfig:"GRPC_ENABLED"     default:"true"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED"  default:"true"`
	LogLevel        string        `envconfig:"LOG_LEVEL"        default:"info"`
	GinMode         string        `envconfig:"GIN_MODE"         default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads an optional .env file and then the environment. It runs
// once per process and exits on invalid values.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s (enabled=%t), Metrics=%t, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.GrpcEnabled, config.MetricsEnabled, config.LogLevel)
	})
	return &config
}

// Process reads the environment without touching .env files.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return &cfg, nil
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
