// Package main provides the CLI entrypoint for kotlin-dsl-accessors.
//
// kotlin-dsl-accessors compiles the accessors of a discovered build model
// into JVM class files carrying Kotlin metadata:
//   - generate reads a YAML or TOML schema and emits classes, source stubs
//     and the module descriptor
//   - inspect decodes an emitted class file or module descriptor
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uzzu/kotlin-dsl/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kotlin-dsl-accessors",
		Short: "Emit Kotlin DSL accessors as JVM class files",
		Long: `Emit strongly typed Kotlin DSL accessors for a build model.

Every extension, convention, task, container element and configuration of
the schema becomes a Kotlin file facade class with a kotlin.Metadata
annotation, so the Kotlin compiler resolves accessors without sources.

Examples:
  kotlin-dsl-accessors generate --schema schema.yaml --binary-dir out/bin
  kotlin-dsl-accessors inspect out/bin/org/gradle/kotlin/dsl/AccessorsXyzKt.class
  kotlin-dsl-accessors inspect out/bin/META-INF/kotlin-dsl-accessors.kotlin_module`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
