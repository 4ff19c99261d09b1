package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig controls where settings are loaded from.
type LoaderConfig struct {
	// ConfigFile is an explicit settings file path. When empty, the
	// loader searches the working directory for config.yaml / config.yml.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, .env is loaded
	// if present.
	EnvFile string
}

// Load resolves, reads, and validates engine settings. Environment
// variables with the HAYSTACK_ prefix override file values
// (HAYSTACK_MAX_LOOPS_ALLOWED=3 overrides max_loops_allowed). A missing
// config file is not an error; defaults apply.
func Load(opts LoaderConfig) (*Settings, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix("HAYSTACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: reading config file: %w", err)
			}
		}
	}

	// Bind keys explicitly so AutomaticEnv sees them even when the file
	// omits them.
	for _, key := range []string{"name", "max_loops_allowed", "logging.level", "logging.format", "logging.output"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: binding %s: %w", key, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshaling settings: %w", err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}
