package support

import (
	"strings"
)

// Internal names of the build API types generated code refers to.
const (
	Project                     = "org/gradle/api/Project"
	Action                      = "org/gradle/api/Action"
	ExtensionAware              = "org/gradle/api/plugins/ExtensionAware"
	ExtensionContainer          = "org/gradle/api/plugins/ExtensionContainer"
	NamedDomainObjectCollection = "org/gradle/api/NamedDomainObjectCollection"
	NamedDomainObjectContainer  = "org/gradle/api/NamedDomainObjectContainer"
	NamedDomainObjectProvider   = "org/gradle/api/NamedDomainObjectProvider"
	TaskContainer               = "org/gradle/api/tasks/TaskContainer"
	TaskProvider                = "org/gradle/api/tasks/TaskProvider"
	Configuration               = "org/gradle/api/artifacts/Configuration"
	Dependency                  = "org/gradle/api/artifacts/Dependency"
	ExternalModuleDependency    = "org/gradle/api/artifacts/ExternalModuleDependency"
	DependencyConstraint        = "org/gradle/api/artifacts/DependencyConstraint"
	DependencyHandler           = "org/gradle/api/artifacts/dsl/DependencyHandler"
	DependencyConstraintHandler = "org/gradle/api/artifacts/dsl/DependencyConstraintHandler"

	// Runtime is the facade hosting the runtime helpers.
	Runtime = "org/gradle/kotlin/dsl/accessors/runtime/RuntimeKt"
)

// BinaryName converts an internal name to its dotted binary form.
func BinaryName(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}
