package kmetadata

import (
	"strings"
)

// Well-known Kotlin classes.
const (
	ClassAny    = "kotlin/Any"
	ClassUnit   = "kotlin/Unit"
	ClassString = "kotlin/String"
)

var platformClasses = map[string]string{
	"java.lang.Object":                "kotlin/Any",
	"java.lang.String":                "kotlin/String",
	"java.lang.CharSequence":          "kotlin/CharSequence",
	"java.lang.Throwable":             "kotlin/Throwable",
	"java.lang.Cloneable":             "kotlin/Cloneable",
	"java.lang.Number":                "kotlin/Number",
	"java.lang.Comparable":            "kotlin/Comparable",
	"java.lang.Enum":                  "kotlin/Enum",
	"java.lang.annotation.Annotation": "kotlin/Annotation",
	"java.lang.Boolean":               "kotlin/Boolean",
	"java.lang.Character":             "kotlin/Char",
	"java.lang.Byte":                  "kotlin/Byte",
	"java.lang.Short":                 "kotlin/Short",
	"java.lang.Integer":               "kotlin/Int",
	"java.lang.Long":                  "kotlin/Long",
	"java.lang.Float":                 "kotlin/Float",
	"java.lang.Double":                "kotlin/Double",
	"boolean":                         "kotlin/Boolean",
	"char":                            "kotlin/Char",
	"byte":                            "kotlin/Byte",
	"short":                           "kotlin/Short",
	"int":                             "kotlin/Int",
	"long":                            "kotlin/Long",
	"float":                           "kotlin/Float",
	"double":                          "kotlin/Double",
	"java.lang.Iterable":              "kotlin/collections/Iterable",
	"java.util.Iterator":              "kotlin/collections/Iterator",
	"java.util.ListIterator":          "kotlin/collections/ListIterator",
	"java.util.Collection":            "kotlin/collections/Collection",
	"java.util.List":                  "kotlin/collections/List",
	"java.util.Set":                   "kotlin/collections/Set",
	"java.util.Map":                   "kotlin/collections/Map",
	"java.util.Map$Entry":             "kotlin/collections/Map.Entry",
}

// ClassName maps a JVM binary class name ("java.util.Map$Entry",
// "org.gradle.api.Project") to its Kotlin class name in metadata form
// ("kotlin/collections/Map.Entry", "org/gradle/api/Project").
func ClassName(binaryName string) string {
	if k, ok := platformClasses[binaryName]; ok {
		return k
	}

	pkg, simple := "", binaryName
	if i := strings.LastIndexByte(binaryName, '.'); i >= 0 {
		pkg, simple = binaryName[:i], binaryName[i+1:]
	}

	simple = strings.ReplaceAll(simple, "$", ".")
	if pkg == "" {
		return simple
	}

	return strings.ReplaceAll(pkg, ".", "/") + "/" + simple
}
