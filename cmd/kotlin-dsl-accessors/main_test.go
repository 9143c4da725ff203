package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzzu/kotlin-dsl/internal/logger"
)

const schemaYAML = `
extensions:
  - receiver: org.gradle.api.Project
    name: java
    type: org.gradle.api.plugins.JavaPluginExtension
tasks:
  - receiver: org.gradle.api.tasks.TaskContainer
    name: compileJava
    type: org.gradle.api.tasks.compile.JavaCompile
configurations: [implementation, "illegal/name"]
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	restore := logger.Replace(logger.Logger)
	t.Cleanup(restore)

	var out bytes.Buffer

	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestGenerateThenInspect(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(schemaYAML), 0o644))

	binDir := filepath.Join(dir, "bin")
	srcDir := filepath.Join(dir, "src")

	out, err := execute(t, "generate",
		"--schema", schemaPath,
		"--binary-dir", binDir,
		"--source-dir", srcDir,
		"--module-name", "app",
		"--workers", "2",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Emitted 3 accessor classes")
	assert.Contains(t, out, "illegal/name")

	modulePath := filepath.Join(binDir, "META-INF", "app.kotlin_module")
	require.FileExists(t, modulePath)

	configuration := filepath.Join(binDir, "org", "gradle", "kotlin", "dsl", "ImplementationConfigurationAccessorsKt.class")
	require.FileExists(t, configuration)
	require.FileExists(t, filepath.Join(srcDir, "org", "gradle", "kotlin", "dsl", "ImplementationConfigurationAccessors.kt"))

	out, err = execute(t, "inspect", modulePath, configuration)
	require.NoError(t, err)

	assert.Contains(t, out, "module app.kotlin_module")
	assert.Contains(t, out, `"org.gradle.kotlin.dsl"`)
	assert.Contains(t, out, `"ImplementationConfigurationAccessorsKt"`)
	assert.Contains(t, out, "class org/gradle/kotlin/dsl/ImplementationConfigurationAccessorsKt extends java/lang/Object")
	assert.Contains(t, out, "ACONST_NULL")
	assert.Contains(t, out, "kotlin.Metadata k=2 mv=[1 9 0]")
	assert.Contains(t, out, "getImplementation(Lorg/gradle/api/NamedDomainObjectContainer;)")
}

func TestGenerate_RequiresSchema(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "generate", "--binary-dir", t.TempDir())
	require.ErrorContains(t, err, "schema is required")
}

func TestInspect_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bad.class")
	require.NoError(t, os.WriteFile(path, []byte{0xCA, 0xFE}, 0o644))

	_, err := execute(t, "inspect", path)
	require.ErrorContains(t, err, "inspecting "+path)
}
