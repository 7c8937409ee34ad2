package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Keychain KeychainConfig `mapstructure:"keychain"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type KeychainConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load reads taskcli.yml from the working directory or ~/.taskcli,
// with every key overridable through TASKCLI_* environment variables.
// A missing config file is not an error, the defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("taskcli")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".taskcli"))
	}

	v.SetDefault("api.base_url", "http://localhost:8001")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("keychain.path", filepath.Join(home, ".taskcli", "credentials.json"))
	v.SetDefault("logging.development", false)

	v.SetEnvPrefix("TASKCLI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading taskcli.yml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing taskcli.yml: %w", err)
	}

	return &cfg, nil
}

func (c *Config) BaseURL() string {
	return strings.TrimRight(c.API.BaseURL, "/")
}
