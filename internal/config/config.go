// Package config loads the command line configuration of the accessor
// generator from a config file, KOTLIN_DSL_* environment variables and
// command line flags.
package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/gen"
)

// Config represents the generator configuration
type Config struct {
	Schema          string `mapstructure:"schema"`           // YAML or TOML schema document
	SourceDir       string `mapstructure:"source_dir"`       // Kotlin source stubs; empty skips them
	BinaryDir       string `mapstructure:"binary_dir"`       // class files and META-INF
	ModuleName      string `mapstructure:"module_name"`      // META-INF/<module_name>.kotlin_module
	Workers         int    `mapstructure:"workers"`          // concurrent emitters (default: GOMAXPROCS)
	QueueSize       int    `mapstructure:"queue_size"`       // artifacts waiting for the writer
	MetadataVersion string `mapstructure:"metadata_version"` // semantic version, e.g. "1.9.0"
	JSONLogs        bool   `mapstructure:"json_logs"`
	Verbose         bool   `mapstructure:"verbose"`
}

// MetadataVersionInts returns the metadata version as the major, minor and
// patch triple recorded in kotlin.Metadata.
func (c *Config) MetadataVersionInts() ([]int, error) {
	v, err := semver.NewVersion(c.MetadataVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "metadata_version %q", c.MetadataVersion)
	}

	return []int{int(v.Major()), int(v.Minor()), int(v.Patch())}, nil
}

// GeneratorOptions translates the configuration into generator options.
func (c *Config) GeneratorOptions() ([]gen.Option, error) {
	version, err := c.MetadataVersionInts()
	if err != nil {
		return nil, err
	}

	return []gen.Option{
		gen.WithModuleName(c.ModuleName),
		gen.WithMetadataVersion(version...),
		gen.WithWorkers(c.Workers),
		gen.WithQueueSize(c.QueueSize),
	}, nil
}
