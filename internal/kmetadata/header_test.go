package kmetadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzzu/kotlin-dsl/internal/jvm"
)

func TestHeader_ThroughClassFile(t *testing.T) {
	pkg := javaExtensionPackage()
	pkg.ModuleName = "kotlin-dsl-accessors"

	h, err := FileFacade([]int{1, 9, 0}, pkg)
	require.NoError(t, err)

	h.ExtraInt = 48

	w := jvm.NewClassWriter(jvm.AccPublic|jvm.AccFinal|jvm.AccSuper, "org/gradle/kotlin/dsl/AKt", jvm.ObjectInternal)
	w.AddAnnotation(h.Annotation())

	data, err := w.Bytes()
	require.NoError(t, err)

	c, err := jvm.Parse(data)
	require.NoError(t, err)

	read, err := HeaderOf(c)
	require.NoError(t, err)
	assert.Equal(t, h, read)

	decoded, err := read.Package()
	require.NoError(t, err)
	assert.Equal(t, pkg, decoded)
}

func TestHeader_AnnotationElementOrder(t *testing.T) {
	a := Header{Kind: KindFileFacade, MetadataVersion: []int{1, 9, 0}}.Annotation()

	names := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		names = append(names, e.Name)
	}

	assert.Equal(t, AnnotationDescriptor, a.Descriptor)
	assert.Equal(t, []string{"mv", "k", "d1", "d2"}, names)
}

func TestHeaderOf_Missing(t *testing.T) {
	_, err := HeaderOf(&jvm.Class{Name: "a/B"})
	assert.ErrorContains(t, err, "no kotlin.Metadata")

	_, err = Header{Kind: KindClass}.Package()
	assert.Error(t, err)
}
