// Package schema defines the immutable project schema the accessor generator
// consumes, and loads it from YAML or TOML documents.
//
// The schema is discovered elsewhere; this package only models it. Type
// accessibility is pre-resolved: every return type arrives already classified
// as Accessible or Inaccessible.
//
// # Document Overview
//
//	extensions:
//	  - receiver: org.gradle.api.Project
//	    name: java
//	    type: org.gradle.api.plugins.JavaPluginExtension
//	conventions:
//	  - receiver: org.gradle.api.Project
//	    name: base
//	    type: org.gradle.api.plugins.BasePluginConvention
//	tasks:
//	  - receiver: org.gradle.api.tasks.TaskContainer
//	    name: compileJava
//	    type: org.gradle.api.tasks.compile.JavaCompile
//	container_elements:
//	  - receiver: org.gradle.api.NamedDomainObjectContainer<org.gradle.api.tasks.SourceSet>
//	    name: main
//	    type: org.gradle.api.tasks.SourceSet
//	    inaccessible: true       # erased to kotlin.Any in generated signatures
//	configurations: [api, implementation]
//
// # Type Notation
//
// Types use JVM binary names with Kotlin-style generics:
//   - Plain class: "org.gradle.api.Project"
//   - Nested class: "org.gradle.api.Outer$Inner"
//   - Generic: "java.util.Map<java.lang.String, *>"
//   - Nullable: "java.lang.String?"
package schema
