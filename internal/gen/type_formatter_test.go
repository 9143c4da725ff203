package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uzzu/kotlin-dsl/internal/schema"
)

func TestSignatureOf(t *testing.T) {
	typ := schema.MustParseType("java.util.Map<java.lang.String, *>")

	assert.Equal(t, "Ljava/util/Map<Ljava/lang/String;*>;", signatureOf(typ))
	assert.Equal(t, "Ljava/util/Map;", descriptorOf(typ))
}

func TestGenericSignature(t *testing.T) {
	plain := schema.ClassOf("a.B")
	list := schema.ClassOf("java.util.List", plain)

	assert.Empty(t, genericSignature(plain, plain))
	assert.Equal(t, "(La/B;)Ljava/util/List<La/B;>;", genericSignature(list, plain))
}

func TestKotlinTypeOf(t *testing.T) {
	typ := schema.MustParseType("java.util.Map<java.lang.String, *>?")

	kt := kotlinTypeOf(typ)
	assert.Equal(t, "kotlin/collections/Map", kt.ClassName)
	assert.True(t, kt.Nullable)
	assert.Equal(t, "kotlin.collections.Map<kotlin.String, *>?", kt.String())
}

func TestSourceTypeOf(t *testing.T) {
	assert.Equal(t, "kotlin.collections.List<a.Outer.Inner>",
		sourceTypeOf(schema.ClassOf("java.util.List", schema.ClassOf("a.Outer$Inner"))))
	assert.Equal(t, "kotlin.Any", sourceTypeOf(visible(schema.Inaccessible(schema.ClassOf("x.Hidden")))))
}
