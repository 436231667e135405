package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the command line tools
type Config struct {
	Env             string `mapstructure:"ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	MaxCombinations uint64 `mapstructure:"MAX_COMBINATIONS"`

	// Preference defaults, applied when the input leaves them out
	OpenOnly          bool `mapstructure:"OPEN_ONLY"`
	WithTimeConflicts bool `mapstructure:"WITH_TIME_CONFLICTS"`
}

// Load reads "config.{json,yaml,...}" from the given directories (the current directory when none is given), then lets environment variables override it. A missing file is not an error
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_COMBINATIONS", 10000)
	v.SetDefault("OPEN_ONLY", false)
	v.SetDefault("WITH_TIME_CONFLICTS", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	return config, nil
}

func (config Config) IsProduction() bool {
	return config.Env == "production"
}
