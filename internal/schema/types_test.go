package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_Notations(t *testing.T) {
	tests := []struct {
		notation string
		want     TypeOf
	}{
		{
			notation: "org.gradle.api.Project",
			want:     ClassOf("org.gradle.api.Project"),
		},
		{
			notation: "org.gradle.api.Outer$Inner",
			want:     ClassOf("org.gradle.api.Outer$Inner"),
		},
		{
			notation: "java.util.Map<java.lang.String, *>",
			want:     ClassOf("java.util.Map", ClassOf("java.lang.String"), Star()),
		},
		{
			notation: "java.util.List< java.util.List<java.lang.String?> >?",
			want: TypeOf{
				Class: "java.util.List",
				Arguments: []TypeOf{
					ClassOf("java.util.List", TypeOf{Class: "java.lang.String", Nullable: true}),
				},
				Nullable: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseType(tt.notation)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseType_RoundTripsCanonicalForm(t *testing.T) {
	const notation = "org.gradle.api.NamedDomainObjectContainer<org.gradle.api.tasks.SourceSet>"

	got, err := ParseType(notation)
	require.NoError(t, err)
	assert.Equal(t, notation, got.String())
}

func TestParseType_Errors(t *testing.T) {
	for _, notation := range []string{"", "*", "a.b.C<", "a.b.C<d>>", "a..b", "1abc", "a.b.C<d;e>"} {
		_, err := ParseType(notation)
		assert.Error(t, err, notation)
	}
}

func TestTypeOf_Names(t *testing.T) {
	typ := ClassOf("org.gradle.api.Outer$Inner")

	assert.Equal(t, "org/gradle/api/Outer$Inner", typ.InternalName())
	assert.Equal(t, "org.gradle.api.Outer.Inner", typ.SourceName())
}

func TestAccessibleType_String(t *testing.T) {
	typ := ClassOf("a.B")

	assert.Equal(t, "Accessible(type=a.B)", Accessible(typ).String())
	assert.Equal(t, "Inaccessible(type=a.B)", Inaccessible(typ).String())
	assert.True(t, Accessible(typ).IsAccessible())
	assert.False(t, Inaccessible(typ).IsAccessible())
}

func TestAccessorNameSpec_KotlinIdentifier(t *testing.T) {
	assert.Equal(t, "java", NameSpec("java").KotlinIdentifier())
	assert.Equal(t, "`in`", NameSpec("in").KotlinIdentifier())
	assert.Equal(t, "`my-ext`", NameSpec("my-ext").KotlinIdentifier())
	assert.Equal(t, "`1st`", NameSpec("1st").KotlinIdentifier())
}

func TestAccessorNameSpec_IsLegal(t *testing.T) {
	assert.True(t, NameSpec("java").IsLegal())
	assert.True(t, NameSpec("my-ext").IsLegal())
	assert.False(t, NameSpec("").IsLegal())
	assert.False(t, NameSpec("a.b").IsLegal())
	assert.False(t, NameSpec("a/b").IsLegal())
	assert.False(t, NameSpec("a`b").IsLegal())
}

func TestTypedAccessorSpec_EqualityFollowsCanonicalForm(t *testing.T) {
	a := TypedAccessorSpec{
		Receiver:   ClassOf("org.gradle.api.Project"),
		Name:       NameSpec("java"),
		ReturnType: Accessible(ClassOf("org.gradle.api.plugins.JavaPluginExtension")),
	}
	b := a
	c := a
	c.ReturnType = Inaccessible(a.ReturnType.Original())

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t,
		"TypedAccessorSpec(receiver=org.gradle.api.Project, name=AccessorNameSpec(original=java), "+
			"returnType=Accessible(type=org.gradle.api.plugins.JavaPluginExtension))",
		a.String())
}

func TestProjectSchema_Size(t *testing.T) {
	var nilSchema *ProjectSchema

	assert.True(t, nilSchema.IsEmpty())
	assert.True(t, (&ProjectSchema{}).IsEmpty())

	p := &ProjectSchema{Configurations: []AccessorNameSpec{NameSpec("api")}}
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Size())
}
