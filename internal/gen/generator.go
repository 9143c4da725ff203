package gen

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/diagnostic"
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/logger"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// DefaultModuleName names the module descriptor of generated accessors.
const DefaultModuleName = "kotlin-dsl-accessors"

// GeneratorConfig holds configuration for accessor emission.
type GeneratorConfig struct {
	// ModuleName names META-INF/<ModuleName>.kotlin_module and is recorded
	// in the metadata of every facade.
	ModuleName string
	// MetadataVersion is the Kotlin metadata version, e.g. {1, 9, 0}.
	MetadataVersion []int
	// Workers bounds concurrent emitters.
	Workers int
	// QueueSize bounds artifacts waiting for the writer.
	QueueSize int
	// Library resolves the runtime and API members generated code calls.
	Library support.Library
	// Fs receives every artifact.
	Fs afero.Fs
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ModuleName:      DefaultModuleName,
		MetadataVersion: []int{1, 9, 0},
		Workers:         runtime.GOMAXPROCS(0),
		QueueSize:       64,
		Library:         support.Gradle(),
		Fs:              afero.NewOsFs(),
	}
}

// Option adjusts a GeneratorConfig.
type Option func(*GeneratorConfig)

// WithModuleName sets the module name.
func WithModuleName(name string) Option {
	return func(c *GeneratorConfig) { c.ModuleName = name }
}

// WithMetadataVersion sets the Kotlin metadata version.
func WithMetadataVersion(version ...int) Option {
	return func(c *GeneratorConfig) { c.MetadataVersion = version }
}

// WithWorkers bounds concurrent emitters.
func WithWorkers(n int) Option {
	return func(c *GeneratorConfig) { c.Workers = n }
}

// WithQueueSize bounds the writer queue.
func WithQueueSize(n int) Option {
	return func(c *GeneratorConfig) { c.QueueSize = n }
}

// WithLibrary replaces the support library.
func WithLibrary(lib support.Library) Option {
	return func(c *GeneratorConfig) { c.Library = lib }
}

// WithFs replaces the output file system.
func WithFs(fs afero.Fs) Option {
	return func(c *GeneratorConfig) { c.Fs = fs }
}

// Generator emits accessor artifacts for a project schema.
type Generator struct {
	config      GeneratorConfig
	diagnostics diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Diagnostics returns the findings of the last Emit.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diagnostics
}

// EmitAccessorsFor emits the accessors of p with the default configuration
// adjusted by opts. See Generator.Emit.
func EmitAccessorsFor(p *schema.ProjectSchema, srcDir, binDir string, opts ...Option) ([]string, error) {
	config := DefaultGeneratorConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return NewGenerator(config).Emit(p, srcDir, binDir)
}

// Emit translates every accessor of p concurrently and writes one class
// file per accessor under binDir, a Kotlin source stub per accessor under
// srcDir (skipped when srcDir is empty) and, last, the module descriptor
// under binDir/META-INF. It returns the internal names of the emitted
// classes, sorted.
//
// Accessors with names the JVM cannot represent are skipped with a warning.
// The first emitter failure aborts the run once already queued artifacts
// have been written; nothing is rolled back.
func (g *Generator) Emit(p *schema.ProjectSchema, srcDir, binDir string) ([]string, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	g.diagnostics = diagnostic.Diagnostics{}

	logger.Logger.Infow("emitting accessors",
		"accessors", p.Size(),
		"workers", g.config.Workers,
		"binDir", binDir,
		"srcDir", srcDir,
	)

	e := &emitter{config: &g.config, srcDir: srcDir, binDir: binDir}

	if p.IsEmpty() {
		logger.Logger.Infow("schema declares no accessors; writing an empty module descriptor")
	}

	var (
		mu       sync.Mutex
		names    []string
		failures diagnostic.Diagnostics
	)

	err := UseWriter(g.config.Fs, g.config.QueueSize, func(w *Writer) error {
		group, ctx := errgroup.WithContext(context.Background())
		group.SetLimit(g.config.Workers)

		for a := range accessor.All(p) {
			if ctx.Err() != nil {
				break // a worker failed; stop scheduling
			}

			if !g.admit(a) {
				continue
			}

			group.Go(func() error {
				out, err := e.emit(a)
				if err != nil {
					mu.Lock()
					failures.AddError(diagnostic.CodeEmitFailed, err.Error(), accessor.Describe(a))
					mu.Unlock()

					return err
				}

				for _, art := range out.artifacts {
					if err := w.Write(art); err != nil {
						return err
					}
				}

				mu.Lock()
				names = append(names, out.className)
				mu.Unlock()

				return nil
			})
		}

		err := group.Wait()
		g.diagnostics.Merge(failures)

		if err != nil {
			return err
		}

		return w.Write(g.moduleArtifact(binDir, names))
	})
	if err != nil {
		logger.Logger.Errorw("emitting accessors failed", "error", err)
		return nil, err
	}

	slices.Sort(names)

	logger.Logger.Infow("accessors emitted",
		"classes", len(names),
		"skipped", len(g.diagnostics.Warnings),
	)

	return names, nil
}

func (g *Generator) validate() error {
	switch {
	case g.config.Workers < 1:
		return errors.Newf("workers must be positive, got %d", g.config.Workers)
	case g.config.ModuleName == "":
		return errors.New("module name is required")
	case len(g.config.MetadataVersion) == 0:
		return errors.New("metadata version is required")
	case g.config.Library == nil:
		return errors.New("support library is required")
	case g.config.Fs == nil:
		return errors.New("output file system is required")
	}

	return nil
}

// admit records diagnostics for a and reports whether it can be emitted.
func (g *Generator) admit(a accessor.Accessor) bool {
	label := accessor.Describe(a)

	if !a.Name().IsLegal() {
		g.diagnostics.AddWarning(diagnostic.CodeIllegalName,
			"name cannot be represented on the JVM; accessor skipped", label)
		logger.Logger.Warnw("skipping accessor with illegal name", "accessor", label)

		return false
	}

	if spec, ok := typedSpec(a); ok && !spec.ReturnType.IsAccessible() {
		g.diagnostics.AddInfo(diagnostic.CodeInaccessible,
			spec.ReturnType.Original().String()+" is not accessible; typed as kotlin.Any", label)
	}

	return true
}

func typedSpec(a accessor.Accessor) (schema.TypedAccessorSpec, bool) {
	switch a := a.(type) {
	case accessor.ForExtension:
		return a.Spec, true
	case accessor.ForConvention:
		return a.Spec, true
	case accessor.ForContainerElement:
		return a.Spec, true
	case accessor.ForTask:
		return a.Spec, true
	default:
		return schema.TypedAccessorSpec{}, false
	}
}

// moduleArtifact lists every emitted facade in the module descriptor.
func (g *Generator) moduleArtifact(binDir string, classNames []string) Artifact {
	module := kmetadata.ModuleOf(g.config.MetadataVersion, classNames)

	return Artifact{
		Path:    filepath.Join(binDir, "META-INF", g.config.ModuleName+".kotlin_module"),
		Content: module.Bytes(),
	}
}
