// Package diagnostic provides structured warnings and notes collected while
// turning a project schema into accessors.
//
// Key capabilities:
//   - Skipped accessor warnings (names the JVM cannot carry)
//   - Precision-loss notes for inaccessible types erased to kotlin.Any
package diagnostic
