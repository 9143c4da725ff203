package config

import (
	"runtime"

	"github.com/spf13/viper"

	"github.com/uzzu/kotlin-dsl/internal/gen"
)

// SetDefaults sets default values for all configuration keys
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema", "")
	v.SetDefault("source_dir", "")
	v.SetDefault("binary_dir", "build/kotlin-dsl-accessors")
	v.SetDefault("module_name", gen.DefaultModuleName)
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("queue_size", 64)
	v.SetDefault("metadata_version", "1.9.0")
	v.SetDefault("json_logs", false)
	v.SetDefault("verbose", false)
}
