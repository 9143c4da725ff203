package gen

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/diagnostic"
	"github.com/uzzu/kotlin-dsl/internal/logger"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

func TestEmitAccessorsFor_ManifestMatchesNames(t *testing.T) {
	t.Parallel()

	p := testSchema()
	mem, names := emitToMemory(t, p)

	var want []string
	for a := range accessor.All(p) {
		want = append(want, accessor.InternalNameFor(a))
	}

	assert.ElementsMatch(t, want, names)
	assert.IsNonDecreasing(t, names)

	module := readModule(t, mem)
	assert.Equal(t, []int{1, 9, 0}, module.Version)
	assert.Equal(t, names, module.ClassNames())

	for _, name := range names {
		exists, err := afero.Exists(mem, classPath(name))
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func TestEmitAccessorsFor_EmptySchema(t *testing.T) {
	t.Parallel()

	for _, p := range []*schema.ProjectSchema{nil, {}} {
		mem, names := emitToMemory(t, p)
		assert.Empty(t, names)

		module := readModule(t, mem)
		assert.Empty(t, module.Parts)
		assert.Empty(t, module.ClassNames())

		files := snapshot(t, mem)
		assert.Len(t, files, 1, "only the module descriptor")
	}
}

func TestEmitAccessorsFor_EmptySchemaIsLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	t.Cleanup(logger.Replace(zap.New(core).Sugar()))

	emitToMemory(t, &schema.ProjectSchema{})

	assert.Equal(t, 1, logs.FilterMessage("schema declares no accessors; writing an empty module descriptor").Len())
	assert.Equal(t, 1, logs.FilterMessage("accessors emitted").Len())
}

func TestEmitAccessorsFor_Deterministic(t *testing.T) {
	t.Parallel()

	first, namesA := emitToMemory(t, testSchema(), WithWorkers(4))
	second, namesB := emitToMemory(t, testSchema(), WithWorkers(1))

	assert.Equal(t, namesA, namesB)
	assert.Equal(t, snapshot(t, first), snapshot(t, second))
}

func TestEmitAccessorsFor_NamingUniqueness(t *testing.T) {
	t.Parallel()

	p := &schema.ProjectSchema{
		Extensions: []schema.TypedAccessorSpec{
			typed(project, "java", schema.Accessible(schema.ClassOf("a.Java"))),
			typed(project, "java", schema.Accessible(schema.ClassOf("b.Java"))),
			typed(taskContainer, "java", schema.Accessible(schema.ClassOf("a.Java"))),
		},
		Conventions: []schema.TypedAccessorSpec{
			typed(project, "java", schema.Accessible(schema.ClassOf("a.Java"))),
		},
	}

	_, names := emitToMemory(t, p)
	require.Len(t, names, 4)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], n)
		seen[n] = true
	}
}

func TestEmitAccessorsFor_SkipsIllegalNames(t *testing.T) {
	t.Parallel()

	p := &schema.ProjectSchema{
		Extensions: []schema.TypedAccessorSpec{
			typed(project, "bad.name", schema.Accessible(schema.ClassOf("a.Bad"))),
			typed(project, "good", schema.Accessible(schema.ClassOf("a.Good"))),
		},
		Configurations: []schema.AccessorNameSpec{schema.NameSpec("with/slash")},
	}

	mem := afero.NewMemMapFs()
	config := DefaultGeneratorConfig()
	config.Fs = mem

	g := NewGenerator(config)

	names, err := g.Emit(p, testSrcDir, testBinDir)
	require.NoError(t, err)
	require.Len(t, names, 1)

	diags := g.Diagnostics()
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeIllegalName, diags.Warnings[0].Code)
	assert.Equal(t, "extension bad.name", diags.Warnings[0].Accessor)
	assert.Equal(t, "configuration with/slash", diags.Warnings[1].Accessor)
	assert.False(t, diags.HasErrors())
	assert.Len(t, g.Diagnostics().All(), 2)
}

func TestEmitAccessorsFor_ReportsInaccessibleTypes(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	config := DefaultGeneratorConfig()
	config.Fs = mem

	g := NewGenerator(config)

	_, err := g.Emit(testSchema(), testSrcDir, testBinDir)
	require.NoError(t, err)

	infos := g.Diagnostics().Infos
	require.Len(t, infos, 1)
	assert.Equal(t, diagnostic.CodeInaccessible, infos[0].Code)
	assert.Equal(t, "convention base", infos[0].Accessor)
	assert.Contains(t, infos[0].Message, "org.gradle.internal.BaseConvention")
}

func TestEmitAccessorsFor_FirstFailurePropagates(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()

	_, err := EmitAccessorsFor(testSchema(), testSrcDir, testBinDir,
		WithFs(mem),
		WithWorkers(1),
		WithLibrary(support.Gradle().Without(support.SymbolNamedTask)),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, support.ErrUnresolved)
	assert.Contains(t, err.Error(), "emitting task compileJava")

	exists, err := afero.Exists(mem, modulePath())
	require.NoError(t, err)
	assert.False(t, exists, "no descriptor after a failure")

	// Artifacts queued before the failure were still written.
	files := snapshot(t, mem)
	assert.NotEmpty(t, files)

	for path := range files {
		assert.False(t, strings.HasSuffix(path, ".tmp"), path)
	}
}

// panickingLibrary panics while resolving one symbol.
type panickingLibrary struct {
	support.Table
	symbol support.Symbol
}

func (l panickingLibrary) Resolve(s support.Symbol) (support.MethodRef, error) {
	if s == l.symbol {
		panic("lookup table corrupted")
	}

	return l.Table.Resolve(s)
}

func TestEmitAccessorsFor_EmitterPanicBecomesError(t *testing.T) {
	mem := afero.NewMemMapFs()
	config := DefaultGeneratorConfig()
	config.Fs = mem
	config.Workers = 1
	config.Library = panickingLibrary{Table: support.Gradle(), symbol: support.SymbolNamedTask}

	g := NewGenerator(config)

	_, err := g.Emit(testSchema(), testSrcDir, testBinDir)
	require.ErrorContains(t, err, "emitting task compileJava: panic: lookup table corrupted")

	exists, err := afero.Exists(mem, modulePath())
	require.NoError(t, err)
	assert.False(t, exists)

	for path := range snapshot(t, mem) {
		assert.False(t, strings.HasSuffix(path, ".tmp"), path)
	}
}

func TestEmitAccessorsFor_FailuresAreDiagnosed(t *testing.T) {
	config := DefaultGeneratorConfig()
	config.Fs = afero.NewMemMapFs()
	config.Workers = 1
	config.Library = support.Gradle().Without(support.SymbolNamedTask)

	g := NewGenerator(config)

	_, err := g.Emit(testSchema(), testSrcDir, testBinDir)
	require.Error(t, err)

	all := g.Diagnostics().All()
	require.NotEmpty(t, all)
	assert.Equal(t, diagnostic.SeverityError, all[0].Severity)
	assert.Equal(t, diagnostic.CodeEmitFailed, all[0].Code)
	assert.Equal(t, "task compileJava", all[0].Accessor)
	assert.True(t, g.Diagnostics().HasErrors())
}

func TestEmitAccessorsFor_WithoutSourceDir(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()

	names, err := EmitAccessorsFor(testSchema(), "", testBinDir, WithFs(mem))
	require.NoError(t, err)

	for path := range snapshot(t, mem) {
		assert.False(t, strings.HasSuffix(path, ".kt"), path)
	}

	assert.Len(t, names, 5)
}

func TestGenerator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
	}{
		{"no workers", WithWorkers(0)},
		{"no module", WithModuleName("")},
		{"no version", WithMetadataVersion()},
		{"no library", WithLibrary(nil)},
		{"no fs", WithFs(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := EmitAccessorsFor(testSchema(), testSrcDir, testBinDir, tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestEmitAccessorsFor_CustomModule(t *testing.T) {
	t.Parallel()

	mem, names := emitToMemory(t, testSchema(), WithModuleName("buildSrc"), WithMetadataVersion(1, 8, 0))

	exists, err := afero.Exists(mem, testBinDir+"/META-INF/buildSrc.kotlin_module")
	require.NoError(t, err)
	assert.True(t, exists)

	meta := readMetadata(t, readClass(t, mem, names[0]))
	assert.Equal(t, "buildSrc", meta.ModuleName)
}
