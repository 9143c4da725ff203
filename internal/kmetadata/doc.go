// Package kmetadata encodes the structural Kotlin metadata carried by
// generated class files and the module descriptor listing them.
//
// A file facade stores its declarations in the kotlin.Metadata annotation:
// d1 holds protobuf messages (a string table followed by a Package) packed
// into strings, d2 holds the strings those messages refer to. Tooling reads
// names, receiver and parameter types, nullability, type arguments and
// default-value flags from it without loading any code.
//
// Messages are written with google.golang.org/protobuf/encoding/protowire
// using the field numbers of Kotlin's metadata.proto and jvm_metadata.proto.
package kmetadata
