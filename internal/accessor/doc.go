// Package accessor models the five accessor shapes generated from a project
// schema and derives the artifact name of each.
//
// Accessor is a closed sum type. Consumers dispatch through Accept with a
// Visitor, so a new shape is a compile-time change for every visitor rather
// than a runtime fallthrough.
package accessor
