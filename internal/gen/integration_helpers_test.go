package gen

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
)

const (
	testSrcDir = "/out/src"
	testBinDir = "/out/bin"
)

var (
	project       = schema.ClassOf("org.gradle.api.Project")
	taskContainer = schema.ClassOf("org.gradle.api.tasks.TaskContainer")
	sourceSets    = schema.ClassOf("org.gradle.api.NamedDomainObjectContainer",
		schema.ClassOf("org.gradle.api.tasks.SourceSet"))
)

func typed(receiver schema.TypeOf, name string, ret schema.AccessibleType) schema.TypedAccessorSpec {
	return schema.TypedAccessorSpec{Receiver: receiver, Name: schema.NameSpec(name), ReturnType: ret}
}

// testSchema has one accessor of every kind.
func testSchema() *schema.ProjectSchema {
	return &schema.ProjectSchema{
		Extensions: []schema.TypedAccessorSpec{
			typed(project, "java", schema.Accessible(schema.ClassOf("org.gradle.api.plugins.JavaPluginExtension"))),
		},
		Conventions: []schema.TypedAccessorSpec{
			typed(project, "base", schema.Inaccessible(schema.ClassOf("org.gradle.internal.BaseConvention"))),
		},
		Tasks: []schema.TypedAccessorSpec{
			typed(taskContainer, "compileJava", schema.Accessible(schema.ClassOf("org.gradle.api.tasks.compile.JavaCompile"))),
		},
		ContainerElements: []schema.TypedAccessorSpec{
			typed(sourceSets, "main", schema.Accessible(schema.ClassOf("org.gradle.api.tasks.SourceSet"))),
		},
		Configurations: []schema.AccessorNameSpec{
			schema.NameSpec("implementation"),
		},
	}
}

// emitToMemory runs the generator against an in-memory file system.
func emitToMemory(t *testing.T, p *schema.ProjectSchema, opts ...Option) (afero.Fs, []string) {
	t.Helper()

	mem := afero.NewMemMapFs()

	names, err := EmitAccessorsFor(p, testSrcDir, testBinDir, append([]Option{WithFs(mem)}, opts...)...)
	require.NoError(t, err)

	return mem, names
}

func classPath(internalName string) string {
	return filepath.Join(testBinDir, filepath.FromSlash(internalName)+".class")
}

func modulePath() string {
	return filepath.Join(testBinDir, "META-INF", DefaultModuleName+".kotlin_module")
}

func readClass(t *testing.T, mem afero.Fs, internalName string) *jvm.Class {
	t.Helper()

	data, err := afero.ReadFile(mem, classPath(internalName))
	require.NoError(t, err)

	c, err := jvm.Parse(data)
	require.NoError(t, err)

	return c
}

func readMetadata(t *testing.T, c *jvm.Class) *kmetadata.Package {
	t.Helper()

	h, err := kmetadata.HeaderOf(c)
	require.NoError(t, err)

	p, err := h.Package()
	require.NoError(t, err)

	return p
}

func readModule(t *testing.T, mem afero.Fs) *kmetadata.Module {
	t.Helper()

	data, err := afero.ReadFile(mem, modulePath())
	require.NoError(t, err)

	m, err := kmetadata.ParseModule(data)
	require.NoError(t, err)

	return m
}

// snapshot maps every file path under root to its content.
func snapshot(t *testing.T, mem afero.Fs) map[string]string {
	t.Helper()

	files := make(map[string]string)

	err := afero.Walk(mem, "/", func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		data, err := afero.ReadFile(mem, path)
		if err != nil {
			return err
		}

		files[path] = string(data)

		return nil
	})
	require.NoError(t, err)

	return files
}
