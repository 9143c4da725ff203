// Package support names the runtime library and build API members that
// generated accessors call.
//
// Emitters never spell out owners or descriptors themselves: they ask a
// Library for the MethodRef behind a stable Symbol. The Gradle library is
// the default; callers can supply another Table to target a different
// runtime.
package support
