package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to the names of all environment variables,
// for example MONEYDEMO_LOCALE.
const envPrefix = "MONEYDEMO"

type config struct {
	Locale      string        `envconfig:"LOCALE" default:"pt-BR"`
	Quotes      []string      `envconfig:"QUOTES" default:"USD,EUR"`
	RateURL     string        `envconfig:"RATE_URL"`
	RateTimeout time.Duration `envconfig:"RATE_TIMEOUT" default:"5s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"15m"`
	CacheSize   int           `envconfig:"CACHE_SIZE" default:"256"`
	RedisURL    string        `envconfig:"REDIS_URL"`
	DBPath      string        `envconfig:"DB_PATH"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// loadConfig reads the configuration from the environment, after loading
// envFile, or .env if envFile is empty, when such a file exists.
func loadConfig(logger log.Logger, envFile string) (config, error) {
	var err error
	if envFile != "" {
		err = godotenv.Load(envFile)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		level.Debug(logger).Log("msg", "no .env file loaded, using the environment only", "err", err)
	} else {
		level.Info(logger).Log("msg", "environment loaded from .env file")
	}

	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, fmt.Errorf("processing environment: %w", err)
	}
	level.Info(logger).Log(
		"msg", "config loaded",
		"locale", cfg.Locale,
		"quotes", strings.Join(cfg.Quotes, ","),
		"rate_url", cfg.RateURL != "",
		"rate_timeout", cfg.RateTimeout,
		"cache_ttl", cfg.CacheTTL,
		"redis", cfg.RedisURL != "",
		"db_path", cfg.DBPath,
	)
	return cfg, nil
}

// newLogger returns a logfmt logger writing to w and dropping records
// below the given level: debug, info, warn or error.
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "", "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
