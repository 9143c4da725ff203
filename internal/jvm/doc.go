// Package jvm encodes and decodes JVM class files.
//
// It covers what generated accessor facades need: a deduplicating constant
// pool, static methods whose Code attribute is built instruction by
// instruction with operand stack tracking, generic Signature attributes and
// runtime-visible annotations. Parse reads such files back for inspection.
//
// Instructions are branch-free, so no StackMapTable is emitted; class files
// target Java 8 (major version 52).
package jvm
