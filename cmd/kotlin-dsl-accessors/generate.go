package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uzzu/kotlin-dsl/internal/config"
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/gen"
	"github.com/uzzu/kotlin-dsl/internal/logger"
	"github.com/uzzu/kotlin-dsl/internal/schema"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"schema":           "schema",
	"source-dir":       "source_dir",
	"binary-dir":       "binary_dir",
	"module-name":      "module_name",
	"workers":          "workers",
	"queue-size":       "queue_size",
	"metadata-version": "metadata_version",
	"json-logs":        "json_logs",
	"verbose":          "verbose",
}

func newGenerateCmd() *cobra.Command {
	var configPath string

	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit accessor classes for a schema",
		Long: `Emit one class file per accessor under the binary directory, a Kotlin
source stub per accessor under the source directory and the module
descriptor under <binary-dir>/META-INF.

Settings are read from kotlin-dsl-accessors.yaml or .toml in the working
directory (or --config), then KOTLIN_DSL_* environment variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}

			return runGenerate(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: ./kotlin-dsl-accessors.{yaml,toml})")
	flags.StringP("schema", "s", "", "Schema document (.yaml, .yml or .toml)")
	flags.String("source-dir", "", "Output directory for Kotlin source stubs (default: none)")
	flags.StringP("binary-dir", "o", "", "Output directory for class files")
	flags.String("module-name", "", "Module name of the kotlin_module descriptor")
	flags.IntP("workers", "j", 0, "Concurrent emitters")
	flags.Int("queue-size", 0, "Artifacts waiting for the writer")
	flags.String("metadata-version", "", "Kotlin metadata version")
	flags.Bool("json-logs", false, "Log JSON to stderr")
	flags.BoolP("verbose", "v", false, "Log every written artifact")

	bindFlags(v, cmd)

	return cmd
}

// bindFlags lets flags set on the command line override file and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	if err := logger.Initialize(cfg.JSONLogs, cfg.Verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	p, err := schema.LoadFile(cfg.Schema)
	if err != nil {
		return err
	}

	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return err
	}

	genConfig := gen.DefaultGeneratorConfig()
	for _, opt := range opts {
		opt(&genConfig)
	}

	g := gen.NewGenerator(genConfig)

	names, err := g.Emit(p, cfg.SourceDir, cfg.BinaryDir)

	out := cmd.OutOrStdout()

	diags := g.Diagnostics()
	for _, d := range diags.All() {
		fmt.Fprintln(out, d)
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Emitted %d accessor classes to %s\n", len(names), cfg.BinaryDir)

	return nil
}
