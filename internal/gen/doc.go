// Package gen emits Kotlin DSL accessors as compiled JVM class files.
//
// Every accessor of a project schema becomes one file facade: a class whose
// static methods implement the accessor, annotated with the Kotlin metadata
// the compiler resolves it through. A Kotlin source stub with the same
// declarations is rendered next to it with text/template, and a module
// descriptor listing every facade is written last.
//
// Accessor shapes:
//   - Extension: getter via the runtime lookup + configurator via the extension container
//   - Convention: getter via the runtime lookup + configurator applying the action
//   - Task, container element: provider-returning getter
//   - Configuration: container getter + dependency and constraint helpers
//
// Translation is pure and runs on a bounded worker pool; a single Writer
// owns the output file system.
package gen
