package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/uzzu/kotlin-dsl/internal/errors"
)

// FileName is the base name of the config file searched in the working
// directory; the extension selects YAML or TOML.
const FileName = "kotlin-dsl-accessors"

// EnvPrefix prefixes every environment variable, e.g. KOTLIN_DSL_WORKERS.
const EnvPrefix = "KOTLIN_DSL"

// NewViper returns a Viper instance with defaults and environment binding.
// Callers bind command line flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// Load reads configPath, or FileName.{yaml,toml} from the working directory
// when configPath is empty, into v and returns the validated configuration.
// A missing default config file is not an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config %s", v.ConfigFileUsed())
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
