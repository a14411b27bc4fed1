package config

import (
	"fivecarddraw/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for five-card draw
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		Seed      int64  `yaml:"seed" envconfig:"seed"`
		MaxSwap   int    `yaml:"maxSwap" envconfig:"max_swap"`
		HouseName string `yaml:"houseName" envconfig:"house_name"`
	}
	Server struct {
		Addr           string   `yaml:"addr" envconfig:"addr"`
		ReadTimeout    int      `yaml:"readTimeout" envconfig:"read_timeout"`
		WriteTimeout   int      `yaml:"writeTimeout" envconfig:"write_timeout"`
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.MaxSwap = 5
	cfg.Server.Addr = ":5000"
	cfg.Server.ReadTimeout = 5
	cfg.Server.WriteTimeout = 10
	cfg.Server.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("FCD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("fcd", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
