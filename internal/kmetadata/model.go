package kmetadata

import (
	"strconv"
	"strings"
)

// Variance of a type argument or type parameter. Values match the proto enums.
type Variance int

const (
	VarianceIn  Variance = 0
	VarianceOut Variance = 1
	VarianceInv Variance = 2
	// VarianceStar is only valid for type projections.
	VarianceStar Variance = 3
)

// Type is a Kotlin type reference.
type Type struct {
	// ClassName is in Kotlin class-name form: "kotlin/collections/List",
	// "a/b/Outer.Inner". Empty when the type refers to a type parameter.
	ClassName string
	// TypeParameterID refers to a TypeParameter when IsTypeParameter is set.
	TypeParameterID int
	IsTypeParameter bool
	Arguments       []TypeProjection
	Nullable        bool
}

// TypeProjection is a type argument. Type is nil for star projections.
type TypeProjection struct {
	Variance Variance
	Type     *Type
}

// ClassType returns a non-null class type with invariant arguments.
func ClassType(className string, args ...Type) Type {
	t := Type{ClassName: className}
	for i := range args {
		t.Arguments = append(t.Arguments, TypeProjection{Variance: VarianceInv, Type: &args[i]})
	}

	return t
}

// TypeParameterType refers to the type parameter with the given id.
func TypeParameterType(id int) Type {
	return Type{TypeParameterID: id, IsTypeParameter: true}
}

// StarProjection returns the "*" type argument.
func StarProjection() TypeProjection {
	return TypeProjection{Variance: VarianceStar}
}

// AsNullable returns a nullable copy of t.
func (t Type) AsNullable() Type {
	t.Nullable = true
	return t
}

// String renders t in Kotlin-like notation for diagnostics.
func (t Type) String() string {
	var sb strings.Builder

	if t.IsTypeParameter {
		sb.WriteString("T")
		sb.WriteString(strconv.Itoa(t.TypeParameterID))
	} else {
		sb.WriteString(strings.ReplaceAll(t.ClassName, "/", "."))
	}

	if len(t.Arguments) > 0 {
		sb.WriteByte('<')

		for i, a := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}

			switch {
			case a.Variance == VarianceStar || a.Type == nil:
				sb.WriteByte('*')
				continue
			case a.Variance == VarianceIn:
				sb.WriteString("in ")
			case a.Variance == VarianceOut:
				sb.WriteString("out ")
			}

			sb.WriteString(a.Type.String())
		}

		sb.WriteByte('>')
	}

	if t.Nullable {
		sb.WriteByte('?')
	}

	return sb.String()
}

// TypeParameter declares a type parameter of a function or property.
type TypeParameter struct {
	ID          int
	Name        string
	Variance    Variance
	Reified     bool
	UpperBounds []Type
}

// ValueParameter is a function parameter.
type ValueParameter struct {
	Flags Flags
	Name  string
	Type  Type
}

// DeclaresDefaultValue reports whether the parameter has a default value.
func (p ValueParameter) DeclaresDefaultValue() bool {
	return p.Flags.Has(FlagParamDeclaresDefaultValue)
}

// JvmMethodSignature maps a declaration to its JVM method.
type JvmMethodSignature struct {
	Name       string
	Descriptor string
}

func (s JvmMethodSignature) String() string { return s.Name + s.Descriptor }

// Function is a top-level (extension) function.
type Function struct {
	Flags           Flags
	Name            string
	TypeParameters  []TypeParameter
	ReceiverType    *Type
	ValueParameters []ValueParameter
	ReturnType      Type
	Signature       JvmMethodSignature
}

// Property is a top-level (extension) val.
type Property struct {
	Flags          Flags
	GetterFlags    Flags
	Name           string
	TypeParameters []TypeParameter
	ReceiverType   *Type
	ReturnType     Type
	Getter         JvmMethodSignature
}

// Package is the declaration container of a file facade.
type Package struct {
	Functions  []Function
	Properties []Property
	// ModuleName links the facade to its module descriptor.
	ModuleName string
}
