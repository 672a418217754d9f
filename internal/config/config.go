package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultPort = 4723

type Config struct {
	URL         string        // client service base URL
	APIKey      string        // Authorization header value; empty disables auth
	Port        int           // localhost canary port for the single-instance guard
	HTTPTimeout time.Duration // per-request timeout for probes and API calls
	LogDir      string        // logs directory
}

func FromEnv() Config {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Port:        DefaultPort,
		HTTPTimeout: timeout,
		LogDir:      logDir,
	}
}

// fileConfig mirrors the optional YAML config file. Zero values mean
// "not set" and leave the existing value alone.
type fileConfig struct {
	URL           string `yaml:"url"`
	APIKey        string `yaml:"apikey"`
	Port          int    `yaml:"port"`
	HTTPTimeoutMS int    `yaml:"http_timeout_ms"`
	LogDir        string `yaml:"log_dir"`
}

// WithFile layers values from a YAML file over c.
func (c Config) WithFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config file: %w", err)
	}
	var f fileConfig
	if err := yaml.Unmarshal(b, &f); err != nil {
		return c, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if f.URL != "" {
		c.URL = f.URL
	}
	if f.APIKey != "" {
		c.APIKey = f.APIKey
	}
	if f.Port != 0 {
		c.Port = f.Port
	}
	if f.HTTPTimeoutMS > 0 {
		c.HTTPTimeout = time.Duration(f.HTTPTimeoutMS) * time.Millisecond
	}
	if f.LogDir != "" {
		c.LogDir = f.LogDir
	}
	return c, nil
}
