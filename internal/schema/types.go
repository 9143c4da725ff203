package schema

import (
	"strings"
	"unicode"
)

// TypeOf is a reference to a JVM type with optional type arguments.
// The zero Class denotes a star projection when used as a type argument.
type TypeOf struct {
	// Class is the JVM binary name, e.g. "org.gradle.api.Outer$Inner".
	Class string
	// Arguments are the type arguments in declaration order.
	Arguments []TypeOf
	// Nullable marks a Kotlin nullable type.
	Nullable bool
}

// Star returns the star projection.
func Star() TypeOf { return TypeOf{} }

// ClassOf returns a non-generic type reference.
func ClassOf(binaryName string, args ...TypeOf) TypeOf {
	return TypeOf{Class: binaryName, Arguments: args}
}

// IsStar reports whether t is a star projection.
func (t TypeOf) IsStar() bool { return t.Class == "" }

// InternalName returns the JVM internal name ("a/b/C$D").
func (t TypeOf) InternalName() string {
	return strings.ReplaceAll(t.Class, ".", "/")
}

// SourceName returns the name as written in Kotlin source ("a.b.C.D").
func (t TypeOf) SourceName() string {
	return strings.ReplaceAll(t.Class, "$", ".")
}

// String renders the canonical notation accepted by ParseType.
func (t TypeOf) String() string {
	if t.IsStar() {
		return "*"
	}

	var sb strings.Builder

	sb.WriteString(t.Class)

	if len(t.Arguments) > 0 {
		sb.WriteByte('<')

		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(arg.String())
		}

		sb.WriteByte('>')
	}

	if t.Nullable {
		sb.WriteByte('?')
	}

	return sb.String()
}

// Equal reports structural equality.
func (t TypeOf) Equal(other TypeOf) bool {
	return t.String() == other.String()
}

// AccessibleType classifies whether a type may be named in generated signatures.
// An Inaccessible type keeps its original reference for diagnostics only;
// generated code always sees the generic top type instead.
type AccessibleType struct {
	typ        TypeOf
	accessible bool
}

// Accessible wraps a type that generated code may reference.
func Accessible(t TypeOf) AccessibleType {
	return AccessibleType{typ: t, accessible: true}
}

// Inaccessible wraps a type that generated code must not reference.
func Inaccessible(t TypeOf) AccessibleType {
	return AccessibleType{typ: t}
}

// IsAccessible reports whether the type can be named.
func (a AccessibleType) IsAccessible() bool { return a.accessible }

// Type returns the underlying type and whether it is accessible.
func (a AccessibleType) Type() (TypeOf, bool) { return a.typ, a.accessible }

// Original returns the classified type regardless of accessibility.
func (a AccessibleType) Original() TypeOf { return a.typ }

func (a AccessibleType) String() string {
	if a.accessible {
		return "Accessible(type=" + a.typ.String() + ")"
	}

	return "Inaccessible(type=" + a.typ.String() + ")"
}

// AccessorNameSpec is the logical name of an accessor.
type AccessorNameSpec struct {
	Original string
}

// NameSpec returns the name spec for a logical name.
func NameSpec(original string) AccessorNameSpec {
	return AccessorNameSpec{Original: original}
}

var kotlinHardKeywords = map[string]struct{}{
	"as": {}, "break": {}, "class": {}, "continue": {}, "do": {}, "else": {},
	"false": {}, "for": {}, "fun": {}, "if": {}, "in": {}, "interface": {},
	"is": {}, "null": {}, "object": {}, "package": {}, "return": {}, "super": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typealias": {}, "typeof": {},
	"val": {}, "var": {}, "when": {}, "while": {},
}

// KotlinIdentifier returns the name as a Kotlin identifier, backticked when
// the plain form is a keyword or contains non-identifier characters.
func (n AccessorNameSpec) KotlinIdentifier() string {
	if isPlainIdentifier(n.Original) {
		if _, keyword := kotlinHardKeywords[n.Original]; !keyword {
			return n.Original
		}
	}

	return "`" + n.Original + "`"
}

// IsLegal reports whether the name can be used as a JVM member name and as a
// backticked Kotlin identifier.
func (n AccessorNameSpec) IsLegal() bool {
	if n.Original == "" {
		return false
	}

	return !strings.ContainsAny(n.Original, ".;[]/<>:\\`\r\n")
}

func (n AccessorNameSpec) String() string {
	return "AccessorNameSpec(original=" + n.Original + ")"
}

func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

// TypedAccessorSpec is the unit of generation for extension, convention,
// task and container element accessors.
type TypedAccessorSpec struct {
	Receiver   TypeOf
	Name       AccessorNameSpec
	ReturnType AccessibleType
}

// String is the canonical form; it feeds artifact naming.
func (s TypedAccessorSpec) String() string {
	return "TypedAccessorSpec(receiver=" + s.Receiver.String() +
		", name=" + s.Name.String() +
		", returnType=" + s.ReturnType.String() + ")"
}

// Equal reports value equality.
func (s TypedAccessorSpec) Equal(other TypedAccessorSpec) bool {
	return s.String() == other.String()
}

// ProjectSchema is the discovered shape of a project.
type ProjectSchema struct {
	Extensions        []TypedAccessorSpec
	Conventions       []TypedAccessorSpec
	Tasks             []TypedAccessorSpec
	ContainerElements []TypedAccessorSpec
	Configurations    []AccessorNameSpec
}

// IsEmpty reports whether the schema declares nothing.
func (p *ProjectSchema) IsEmpty() bool {
	return p == nil || len(p.Extensions)+len(p.Conventions)+len(p.Tasks)+
		len(p.ContainerElements)+len(p.Configurations) == 0
}

// Size returns the number of entries across all collections.
func (p *ProjectSchema) Size() int {
	if p == nil {
		return 0
	}

	return len(p.Extensions) + len(p.Conventions) + len(p.Tasks) +
		len(p.ContainerElements) + len(p.Configurations)
}
