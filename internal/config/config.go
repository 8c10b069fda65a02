package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Environment is set from the env flag at load time, not from the file.
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis, used for chat rate limiting
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// workout data sources
	WorkoutsCSVPath   string `toml:"workouts_csv_path"`
	MuscleMappingPath string `toml:"muscle_mapping_path"`

	// chat assistant
	ChatBaseURL                string `toml:"chat_base_url"`
	ChatModel                  string `toml:"chat_model"`
	ChatTimeoutSeconds         int    `toml:"chat_timeout_seconds"`
	ChatMaxRetries             int    `toml:"chat_max_retries"`
	ChatContextCacheTTLSeconds int    `toml:"chat_context_cache_ttl_seconds"`
	ChatRateLimitAllowedPerMin int    `toml:"chat_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file at path and returns the section
// for the given environment.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not present in %s", env, path)
	}

	cfg.Environment = env

	return cfg, nil
}
