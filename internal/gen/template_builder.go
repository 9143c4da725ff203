package gen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/errors"
	"github.com/uzzu/kotlin-dsl/internal/schema"
)

// Stub declaration templates.
const (
	tmplExtension     = "extension"
	tmplConvention    = "convention"
	tmplElement       = "element"
	tmplConfiguration = "configuration"
)

// typedData feeds the extension, convention and element templates.
type typedData struct {
	// Name is the original name, used in string literals.
	Name       string
	Identifier string
	Receiver   string
	Type       string
	// Inaccessible is the original type when Type had to be erased.
	Inaccessible string
	// Handle is the provider type of container elements and tasks.
	Handle string
	// Noun describes the element in KDoc.
	Noun string
}

// configurationData feeds the configuration template.
type configurationData struct {
	Name       string
	Identifier string
}

func newTypedData(spec schema.TypedAccessorSpec) typedData {
	data := typedData{
		Name:       spec.Name.Original,
		Identifier: spec.Name.KotlinIdentifier(),
		Receiver:   sourceTypeOf(spec.Receiver),
		Type:       sourceTypeOf(visible(spec.ReturnType)),
	}

	if !spec.ReturnType.IsAccessible() {
		data.Inaccessible = spec.ReturnType.Original().SourceName()
	}

	return data
}

// renderDeclaration executes one declaration template.
func renderDeclaration(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := stubTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "executing template %s", name)
	}

	return strings.TrimSpace(buf.String()), nil
}

// renderSourceFile assembles a Kotlin source stub from rendered declarations.
func renderSourceFile(declarations []string) ([]byte, error) {
	data := struct {
		Package      string
		Declarations []string
	}{accessor.Package, declarations}

	var buf bytes.Buffer
	if err := stubTemplates.ExecuteTemplate(&buf, "file", data); err != nil {
		return nil, errors.Wrap(err, "executing template file")
	}

	return buf.Bytes(), nil
}

// kotlinString quotes s as a Kotlin string literal.
func kotlinString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}

// kdoc keeps s from closing the surrounding comment.
func kdoc(s string) string {
	return strings.ReplaceAll(s, "*/", "*&#47;")
}

var stubTemplates = template.Must(template.New("stubs").Funcs(template.FuncMap{
	"quote": kotlinString,
	"kdoc":  kdoc,
}).Parse(`
{{define "file"}}// Code generated by kotlin-dsl-accessors. DO NOT EDIT.
@file:Suppress(
    "unused",
    "nothing_to_inline",
    "useless_cast",
    "unchecked_cast",
    "extension_shadowed_by_member",
    "redundant_projection",
    "RemoveRedundantBackticks",
    "ObjectPropertyName",
    "deprecation",
)

package {{.Package}}

import org.gradle.api.Action
import org.gradle.api.artifacts.*
import org.gradle.api.artifacts.dsl.*
import org.gradle.kotlin.dsl.accessors.runtime.*
{{range .Declarations}}

{{.}}
{{end}}{{end}}

{{define "note"}}{{if .Inaccessible}}
 *
 * ` + "`{{kdoc .Inaccessible}}`" + ` is not accessible in a type-safe way.{{end}}{{end}}

{{define "extension"}}
/**
 * Retrieves the [{{kdoc .Name}}][{{.Type}}] extension.{{template "note" .}}
 */
val {{.Receiver}}.{{.Identifier}}: {{.Type}} get() =
    extensionOf(this, {{quote .Name}}){{if not .Inaccessible}} as {{.Type}}{{end}}

/**
 * Configures the [{{kdoc .Name}}][{{.Type}}] extension.
 */
fun {{.Receiver}}.{{.Identifier}}(configure: Action<{{.Type}}>): Unit =
    (this as org.gradle.api.plugins.ExtensionAware).extensions.configure({{quote .Name}}, configure)
{{end}}

{{define "convention"}}
/**
 * Retrieves the [{{kdoc .Name}}][{{.Type}}] convention.{{template "note" .}}
 */
val {{.Receiver}}.{{.Identifier}}: {{.Type}} get() =
    conventionPluginOf(this, {{quote .Name}}){{if not .Inaccessible}} as {{.Type}}{{end}}

/**
 * Configures the [{{kdoc .Name}}][{{.Type}}] convention.
 */
fun {{.Receiver}}.{{.Identifier}}(configure: Action<{{.Type}}>): Unit =
    configure.execute(conventionPluginOf(this, {{quote .Name}}){{if not .Inaccessible}} as {{.Type}}{{end}})
{{end}}

{{define "element"}}
/**
 * Provides the existing [{{kdoc .Name}}][{{.Type}}] {{.Noun}}.{{template "note" .}}
 */
val {{.Receiver}}.{{.Identifier}}: {{.Handle}}<{{.Type}}>
    get() = named({{quote .Name}}, {{.Type}}::class.java)
{{end}}

{{define "configuration"}}
/**
 * The '{{kdoc .Name}}' configuration.
 */
val org.gradle.api.NamedDomainObjectContainer<Configuration>.{{.Identifier}}: org.gradle.api.NamedDomainObjectProvider<Configuration>
    get() = named({{quote .Name}})

/**
 * Adds a dependency to the '{{kdoc .Name}}' configuration.
 *
 * @param dependencyNotation notation for the dependency to be added.
 * @return The dependency.
 *
 * @see [DependencyHandler.add]
 */
fun DependencyHandler.{{.Identifier}}(dependencyNotation: Any): Dependency? =
    add({{quote .Name}}, dependencyNotation)

/**
 * Adds a dependency to the '{{kdoc .Name}}' configuration.
 *
 * @param dependencyNotation notation for the dependency to be added.
 * @param dependencyConfiguration expression to use to configure the dependency.
 * @return The dependency.
 *
 * @see [DependencyHandler.add]
 */
fun DependencyHandler.{{.Identifier}}(
    dependencyNotation: String,
    dependencyConfiguration: Action<ExternalModuleDependency>
): ExternalModuleDependency = addDependencyTo(
    this, {{quote .Name}}, dependencyNotation, dependencyConfiguration
) as ExternalModuleDependency

/**
 * Adds a dependency to the '{{kdoc .Name}}' configuration.
 *
 * Declared for resolution only.
 *
 * @param group the group of the module to be added as a dependency.
 * @param name the name of the module to be added as a dependency.
 * @param version the optional version of the module to be added as a dependency.
 * @param configuration the optional configuration of the module to be added as a dependency.
 * @param classifier the optional classifier of the module artifact to be added as a dependency.
 * @param ext the optional extension of the module artifact to be added as a dependency.
 * @return The dependency.
 */
fun DependencyHandler.{{.Identifier}}(
    group: String,
    name: String,
    version: String? = null,
    configuration: String? = null,
    classifier: String? = null,
    ext: String? = null
): ExternalModuleDependency = TODO("declared for resolution only")

/**
 * Adds a dependency to the '{{kdoc .Name}}' configuration.
 *
 * @param dependency dependency to be added.
 * @param action configuration action to apply to the dependency first.
 * @return The dependency.
 */
fun <T : Dependency> DependencyHandler.{{.Identifier}}(
    dependency: T,
    action: Action<T>
): T {
    action.execute(dependency)
    add({{quote .Name}}, dependency)
    return dependency
}

/**
 * Adds a dependency constraint to the '{{kdoc .Name}}' configuration.
 *
 * @param constraintNotation the dependency constraint notation
 * @return the added dependency constraint
 */
fun DependencyConstraintHandler.{{.Identifier}}(constraintNotation: Any): DependencyConstraint? =
    add({{quote .Name}}, constraintNotation)

/**
 * Adds a dependency constraint to the '{{kdoc .Name}}' configuration.
 *
 * @param constraintNotation the dependency constraint notation
 * @param block the block to use to configure the dependency constraint
 * @return the added dependency constraint
 */
fun DependencyConstraintHandler.{{.Identifier}}(constraintNotation: Any, block: Action<DependencyConstraint>): DependencyConstraint =
    add({{quote .Name}}, constraintNotation, block)
{{end}}
`))
