package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service settings, read from storefront.yaml when present
// and overridable through STOREFRONT_* environment variables.
type Config struct {
	Addr       string        `mapstructure:"addr"`
	RedisAddr  string        `mapstructure:"redis_addr"`
	LoadDelay  time.Duration `mapstructure:"load_delay"`
	SystemDark bool          `mapstructure:"system_dark"`
	LogLevel   string        `mapstructure:"log_level"`
}

// Load reads the configuration, applying defaults for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("load_delay", 3*time.Second)
	v.SetDefault("system_dark", false)
	v.SetDefault("log_level", "info")

	v.SetConfigName("storefront")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/storefront")

	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; only a malformed one is an error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
