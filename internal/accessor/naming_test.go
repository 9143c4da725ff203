package accessor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uzzu/kotlin-dsl/internal/schema"
)

var hashedName = regexp.MustCompile(`^Accessors[0-9a-z]+Kt$`)

func TestClassNameFor_TypedAccessorsAreHashed(t *testing.T) {
	name := ClassNameFor(ForExtension{Spec: spec("java", "a.Java")})

	assert.Regexp(t, hashedName, name)
	assert.Equal(t, PackageInternal+"/"+name, InternalNameFor(ForExtension{Spec: spec("java", "a.Java")}))
}

func TestClassNameFor_Deterministic(t *testing.T) {
	a := ForTask{Spec: spec("jar", "a.Jar")}
	b := ForTask{Spec: spec("jar", "a.Jar")}

	assert.Equal(t, ClassNameFor(a), ClassNameFor(b))
}

func TestClassNameFor_DistinctSpecsDiffer(t *testing.T) {
	base := spec("java", "a.Java")
	inaccessible := base
	inaccessible.ReturnType = schema.Inaccessible(base.ReturnType.Original())

	names := map[string]string{}
	for _, a := range []Accessor{
		ForExtension{Spec: base},
		ForExtension{Spec: spec("kotlin", "a.Java")},
		ForExtension{Spec: spec("java", "a.Other")},
		ForExtension{Spec: inaccessible},
		ForConvention{Spec: base},
		ForTask{Spec: base},
		ForContainerElement{Spec: base},
	} {
		name := ClassNameFor(a)
		if prev, dup := names[name]; dup {
			t.Fatalf("%s and %s share name %s", prev, a, name)
		}

		names[name] = a.String()
	}
}

func TestClassNameFor_Configuration(t *testing.T) {
	a := ForConfiguration{Config: schema.NameSpec("implementation")}

	assert.Equal(t, "ImplementationConfigurationAccessorsKt", ClassNameFor(a))
	assert.Equal(t, "ImplementationConfigurationAccessors", FileNameFor(a))
}

func TestHashOf_KnownValue(t *testing.T) {
	// md5("") = d41d8cd98f00b204e9800998ecf8427e
	assert.Equal(t, "ck2u8j60r58fu0sgyxrigm3cu", HashOf(""))
}

func TestGetterNameFor(t *testing.T) {
	assert.Equal(t, "getJava", GetterNameFor("java"))
	assert.Equal(t, "isEnabled", GetterNameFor("isEnabled"))
	assert.Equal(t, "getIsolated", GetterNameFor("isolated"))
	assert.Equal(t, "getIs", GetterNameFor("is"))
	assert.Equal(t, "get_private", GetterNameFor("_private"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Api", Capitalize("api"))
	assert.Equal(t, "Écrire", Capitalize("écrire"))
	assert.Equal(t, "", Capitalize(""))
}
