package riksdagen

import (
	"os"
	"strconv"
	"strings"
)

// ConfigFromEnv builds a client config from environment variables.
func ConfigFromEnv() *Config {
	cfg := &Config{}
	cfg.BaseURL = strings.TrimSpace(os.Getenv("RIKSDAGEN_BASE_URL"))
	cfg.UserAgent = strings.TrimSpace(os.Getenv("RIKSDAGEN_USER_AGENT"))
	if timeout := strings.TrimSpace(os.Getenv("RIKSDAGEN_TIMEOUT_SECONDS")); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			cfg.TimeoutSecs = secs
		}
	}
	if limit := strings.TrimSpace(os.Getenv("RIKSDAGEN_DEFAULT_LIMIT")); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			cfg.DefaultLimit = n
		}
	}
	return cfg.WithDefaults()
}

// ApplyEnvDefaults fills empty config fields from environment variables.
func ApplyEnvDefaults(cfg *Config) *Config {
	if cfg == nil {
		return ConfigFromEnv()
	}
	envCfg := ConfigFromEnv()
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = envCfg.BaseURL
	}
	if cfg.TimeoutSecs <= 0 {
		cfg.TimeoutSecs = envCfg.TimeoutSecs
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = envCfg.DefaultLimit
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = envCfg.UserAgent
	}
	return cfg.WithDefaults()
}
