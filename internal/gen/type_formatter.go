package gen

import (
	"strings"

	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// anyType stands in for every inaccessible type.
var anyType = schema.MustParseType("java.lang.Object")

// visible returns the type generated code may name for t.
func visible(t schema.AccessibleType) schema.TypeOf {
	if typ, ok := t.Type(); ok {
		return typ
	}

	return anyType
}

// classOf returns a type reference for a support internal name.
func classOf(internal string, args ...schema.TypeOf) schema.TypeOf {
	return schema.ClassOf(support.BinaryName(internal), args...)
}

// descriptorOf returns the erased field descriptor of t.
func descriptorOf(t schema.TypeOf) string {
	return jvm.ObjectDescriptor(t.InternalName())
}

// signatureOf returns the generic signature of t, e.g.
// "Lorg/gradle/api/NamedDomainObjectContainer<Lorg/gradle/api/tasks/SourceSet;>;".
func signatureOf(t schema.TypeOf) string {
	if t.IsStar() {
		return "*"
	}

	var sb strings.Builder

	sb.WriteByte('L')
	sb.WriteString(t.InternalName())

	if len(t.Arguments) > 0 {
		sb.WriteByte('<')

		for _, arg := range t.Arguments {
			sb.WriteString(signatureOf(arg))
		}

		sb.WriteByte('>')
	}

	sb.WriteByte(';')

	return sb.String()
}

// isGeneric reports whether any of ts carries type arguments.
func isGeneric(ts ...schema.TypeOf) bool {
	for _, t := range ts {
		if len(t.Arguments) > 0 {
			return true
		}
	}

	return false
}

// genericSignature returns the Signature attribute of a method, or "" when
// erasure loses nothing.
func genericSignature(ret schema.TypeOf, params ...schema.TypeOf) string {
	if !isGeneric(ret) && !isGeneric(params...) {
		return ""
	}

	sigs := make([]string, 0, len(params))
	for _, p := range params {
		sigs = append(sigs, signatureOf(p))
	}

	return jvm.MethodDescriptor(signatureOf(ret), sigs...)
}

// kotlinTypeOf converts t to a metadata type, mapping Java platform classes.
func kotlinTypeOf(t schema.TypeOf) kmetadata.Type {
	kt := kmetadata.Type{ClassName: kmetadata.ClassName(t.Class), Nullable: t.Nullable}

	for _, arg := range t.Arguments {
		if arg.IsStar() {
			kt.Arguments = append(kt.Arguments, kmetadata.StarProjection())
			continue
		}

		at := kotlinTypeOf(arg)
		kt.Arguments = append(kt.Arguments, kmetadata.TypeProjection{Variance: kmetadata.VarianceInv, Type: &at})
	}

	return kt
}

// kotlinTypePtr is kotlinTypeOf for optional fields.
func kotlinTypePtr(t schema.TypeOf) *kmetadata.Type {
	kt := kotlinTypeOf(t)
	return &kt
}

// sourceTypeOf renders t as Kotlin source, e.g. "kotlin.collections.List<kotlin.String>?".
func sourceTypeOf(t schema.TypeOf) string {
	if t.IsStar() {
		return "*"
	}

	var sb strings.Builder

	sb.WriteString(strings.ReplaceAll(kmetadata.ClassName(t.Class), "/", "."))

	if len(t.Arguments) > 0 {
		sb.WriteByte('<')

		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(sourceTypeOf(arg))
		}

		sb.WriteByte('>')
	}

	if t.Nullable {
		sb.WriteByte('?')
	}

	return sb.String()
}
