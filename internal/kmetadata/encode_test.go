package kmetadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectClass = "org/gradle/api/Project"

func javaExtensionPackage() *Package {
	receiver := ClassType(projectClass)

	return &Package{
		Properties: []Property{{
			Flags:        PublicFinalVal,
			GetterFlags:  CustomGetter,
			Name:         "java",
			ReceiverType: &receiver,
			ReturnType:   ClassType("a/Java"),
			Getter:       JvmMethodSignature{Name: "getJava", Descriptor: "(Lorg/gradle/api/Project;)La/Java;"},
		}},
	}
}

func TestEncode_WireBytes(t *testing.T) {
	d1, d2, err := Encode(javaExtensionPackage())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"java", "a/Java", projectClass, "getJava", "(Lorg/gradle/api/Project;)La/Java;",
	}, d2)

	data, err := StringsToBytes(d1)
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x04, 0x0a, 0x02, 0x08, 0x05, // string table: one record, range 5
		0x22, 0x15, // property
		0x10, 0x00, // name
		0x1a, 0x02, 0x30, 0x01, // return type
		0x2a, 0x02, 0x30, 0x02, // receiver type
		0x38, 0x46, // getter flags
		0xa2, 0x06, 0x06, 0x1a, 0x04, 0x08, 0x03, 0x10, 0x04, // property signature
	}, data)
}

func TestEncode_RoundTrip(t *testing.T) {
	handler := ClassType("org/gradle/api/artifacts/dsl/DependencyHandler")
	nullableString := ClassType(ClassString).AsNullable()
	optional := func(name string) ValueParameter {
		return ValueParameter{Flags: FlagParamDeclaresDefaultValue, Name: name, Type: nullableString}
	}

	container := ClassType("org/gradle/api/NamedDomainObjectContainer",
		ClassType("org/gradle/api/artifacts/Configuration"))

	p := &Package{
		ModuleName: "kotlin-dsl-accessors",
		Functions: []Function{
			{
				Flags:        PublicFinal,
				Name:         "implementation",
				ReceiverType: &handler,
				ValueParameters: []ValueParameter{
					{Name: "group", Type: ClassType(ClassString)},
					optional("version"),
					optional("classifier"),
				},
				ReturnType: ClassType("org/gradle/api/artifacts/ExternalModuleDependency"),
				Signature: JvmMethodSignature{
					Name:       "implementation",
					Descriptor: "(Lorg/gradle/api/artifacts/dsl/DependencyHandler;Ljava/lang/String;Ljava/lang/String;Ljava/lang/String;)Lorg/gradle/api/artifacts/ExternalModuleDependency;",
				},
			},
			{
				Flags: PublicFinal,
				Name:  "implementation",
				TypeParameters: []TypeParameter{{
					ID:          0,
					Name:        "T",
					Variance:    VarianceInv,
					UpperBounds: []Type{ClassType("org/gradle/api/artifacts/Dependency")},
				}},
				ReceiverType: &handler,
				ValueParameters: []ValueParameter{
					{Name: "dependency", Type: TypeParameterType(0)},
					{Name: "action", Type: ClassType("org/gradle/api/Action", TypeParameterType(0))},
				},
				ReturnType: TypeParameterType(0),
			},
		},
		Properties: []Property{{
			Flags:        PublicFinalVal,
			GetterFlags:  CustomGetter,
			Name:         "implementation",
			ReceiverType: &container,
			ReturnType: Type{
				ClassName: "org/gradle/api/NamedDomainObjectProvider",
				Arguments: []TypeProjection{
					{Variance: VarianceOut, Type: &Type{ClassName: "org/gradle/api/artifacts/Configuration"}},
					StarProjection(),
				},
				Nullable: true,
			},
		}},
	}

	d1, d2, err := Encode(p)
	require.NoError(t, err)

	decoded, err := DecodePackage(d1, d2)
	require.NoError(t, err)

	assert.Equal(t, p, decoded)
}

func TestEncode_Deterministic(t *testing.T) {
	d1a, d2a, err := Encode(javaExtensionPackage())
	require.NoError(t, err)

	d1b, d2b, err := Encode(javaExtensionPackage())
	require.NoError(t, err)

	assert.Equal(t, d1a, d1b)
	assert.Equal(t, d2a, d2b)
}

func TestEncode_InternsStringsOnce(t *testing.T) {
	p := javaExtensionPackage()
	p.Properties = append(p.Properties, p.Properties[0])
	p.Properties[1].Name = "javaToo"

	_, d2, err := Encode(p)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, s := range d2 {
		counts[s]++
	}

	assert.Equal(t, 1, counts[projectClass])
	assert.Contains(t, d2, "javaToo")
}

func TestEncode_EmptyPackage(t *testing.T) {
	d1, d2, err := Encode(&Package{})
	require.NoError(t, err)
	assert.Empty(t, d2)

	p, err := DecodePackage(d1, d2)
	require.NoError(t, err)
	assert.Empty(t, p.Functions)
	assert.Empty(t, p.Properties)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		pkg  *Package
	}{
		{"unnamed function", &Package{Functions: []Function{{ReturnType: ClassType(ClassUnit)}}}},
		{"untyped return", &Package{Functions: []Function{{Name: "f"}}}},
		{"projection without type", &Package{Properties: []Property{{
			Name:       "p",
			ReturnType: Type{ClassName: "a/B", Arguments: []TypeProjection{{Variance: VarianceOut}}},
		}}}},
		{"unnamed parameter", &Package{Functions: []Function{{
			Name:            "f",
			ReturnType:      ClassType(ClassUnit),
			ValueParameters: []ValueParameter{{Type: ClassType(ClassAny)}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Encode(tt.pkg)
			assert.Error(t, err)
		})
	}
}

func TestDecodePackage_Errors(t *testing.T) {
	_, err := DecodePackage([]string{"no marker"}, nil)
	assert.Error(t, err)

	d1, _, err := Encode(javaExtensionPackage())
	require.NoError(t, err)

	_, err = DecodePackage(d1, []string{"java"})
	assert.ErrorContains(t, err, "out of range")
}

func TestType_String(t *testing.T) {
	typ := Type{
		ClassName: "kotlin/collections/Map",
		Arguments: []TypeProjection{
			{Variance: VarianceIn, Type: &Type{ClassName: ClassString}},
			StarProjection(),
		},
		Nullable: true,
	}

	assert.Equal(t, "kotlin.collections.Map<in kotlin.String, *>?", typ.String())
	assert.Equal(t, "T0", TypeParameterType(0).String())
}

func TestFlags(t *testing.T) {
	assert.Equal(t, 6, PublicFinal)
	assert.Equal(t, 518, PublicFinalVal)
	assert.Equal(t, 70, CustomGetter)

	assert.Equal(t, VisibilityPublic, Flags(PublicFinal).Visibility())
	assert.Equal(t, ModalityFinal, Flags(PublicFinal).Modality())
	assert.True(t, Flags(PublicFinalVal).Has(FlagPropertyHasGetter))
	assert.False(t, Flags(PublicFinalVal).Has(FlagPropertyIsVar))
	assert.True(t, ValueParameter{Flags: FlagParamDeclaresDefaultValue}.DeclaresDefaultValue())
}
