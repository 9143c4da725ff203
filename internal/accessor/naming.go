package accessor

import (
	"crypto/md5"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Package is the Kotlin package every generated accessor lives in.
const (
	Package         = "org.gradle.kotlin.dsl"
	PackageInternal = "org/gradle/kotlin/dsl"
)

// ClassNameFor returns the simple JVM class name of the artifact holding a.
//
// Typed accessors are named after a digest of their canonical form, so the
// same accessor yields the same name across runs. Distinct accessors collide
// only with negligible probability; collisions are not detected.
// Configuration accessors use the readable "<Name>ConfigurationAccessorsKt".
func ClassNameFor(a Accessor) string {
	return FileNameFor(a) + "Kt"
}

// FileNameFor returns the facade file name without extension, e.g. "Accessors1x2y3z".
func FileNameFor(a Accessor) string {
	if c, ok := a.(ForConfiguration); ok {
		return Capitalize(c.Config.Original) + "ConfigurationAccessors"
	}

	return "Accessors" + HashOf(a.String())
}

// InternalNameFor returns the JVM internal name of the artifact holding a.
func InternalNameFor(a Accessor) string {
	return PackageInternal + "/" + ClassNameFor(a)
}

// HashOf returns the compact MD5 digest of s in base 36.
func HashOf(s string) string {
	sum := md5.Sum([]byte(s))

	return new(big.Int).SetBytes(sum[:]).Text(36)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// GetterNameFor returns the JVM getter name Kotlin derives for a property.
// Names already shaped like "isFoo" keep their name.
func GetterNameFor(property string) string {
	if startsWithIsPrefix(property) {
		return property
	}

	return "get" + capitalizeASCII(property)
}

func startsWithIsPrefix(name string) bool {
	if !strings.HasPrefix(name, "is") || len(name) == 2 {
		return false
	}

	c := name[2]

	return !('a' <= c && c <= 'z')
}

func capitalizeASCII(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}

	return string(s[0]-('a'-'A')) + s[1:]
}
