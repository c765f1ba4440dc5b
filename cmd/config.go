package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mogud/jenga/core/logging"
	"github.com/mogud/jenga/core/logging/handler/console"
	"github.com/mogud/jenga/core/logging/handler/zero"
	"github.com/mogud/jenga/core/logging/slog"
	"github.com/mogud/jenga/core/option"
	"github.com/mogud/jenga/core/script"
)

var configPath string

func setConfigPath(p string) { configPath = p }

type LogConfig struct {
	// Handler is "console" or "json".
	Handler   string `option:"Handler"`
	Level     string `option:"Level"`
	Formatter string `option:"Formatter"`
}

type JengaConfig struct {
	Capacity    int   `option:"Capacity"`
	MaxCapacity int64 `option:"MaxCapacity"`
}

type StressConfig struct {
	Workers int           `option:"Workers"`
	Rounds  int           `option:"Rounds"`
	Timeout time.Duration `option:"Timeout"`
}

type Config struct {
	Log    *LogConfig
	Jenga  *JengaConfig
	Stress *StressConfig
}

// loadConfig reads the -f/--config file, when one was given, over the
// defaults and points the global logger at the configured console handler.
func loadConfig() (*Config, error) {
	store := option.NewStore()
	option.BindType[LogConfig](store, "Log")
	option.BindType[JengaConfig](store, "Jenga")
	option.BindType[StressConfig](store, "Stress")

	if configPath != "" {
		if err := store.AddJSONFile(configPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	logCfg, err := option.Get(store, func(out *LogConfig) {
		out.Handler = "console"
		out.Level = "info"
		out.Formatter = "Color"
	})
	if err != nil {
		return nil, err
	}
	jengaCfg, err := option.Get[JengaConfig](store, nil)
	if err != nil {
		return nil, err
	}
	stressCfg, err := option.Get(store, func(out *StressConfig) {
		out.Workers = 8
		out.Rounds = 100
		out.Timeout = 10 * time.Second
	})
	if err != nil {
		return nil, err
	}

	if err := setupLogging(logCfg); err != nil {
		return nil, err
	}
	return &Config{Log: logCfg, Jenga: jengaCfg, Stress: stressCfg}, nil
}

func setupLogging(cfg *LogConfig) error {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log config: %w", err)
	}

	// stdout carries the reports
	switch cfg.Handler {
	case "json":
		slog.BindGlobalHandler(zero.NewHandler(os.Stderr, level))
	case "console", "":
		opt := console.DefaultOption()
		opt.DefaultLevel = level
		opt.Formatter = cfg.Formatter

		handler := console.NewHandler()
		handler.SetOutput(os.Stderr, os.Stderr)
		handler.Configure(opt, logging.NewLogFormatterRepository())
		slog.BindGlobalHandler(handler)
	default:
		return fmt.Errorf("log config: unknown handler(%s)", cfg.Handler)
	}
	return nil
}

// applyJengaConfig fills the container sizing a script leaves open.
func applyJengaConfig(s *script.Script, cfg *JengaConfig) {
	if s.Capacity == 0 {
		s.Capacity = cfg.Capacity
	}
	if s.MaxCapacity == 0 {
		s.MaxCapacity = cfg.MaxCapacity
	}
}
