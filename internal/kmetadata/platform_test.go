package kmetadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"java.lang.Object", "kotlin/Any"},
		{"java.lang.String", "kotlin/String"},
		{"java.util.Map$Entry", "kotlin/collections/Map.Entry"},
		{"int", "kotlin/Int"},
		{"org.gradle.api.Project", "org/gradle/api/Project"},
		{"a.b.Outer$Inner$Deep", "a/b/Outer.Inner.Deep"},
		{"Simple", "Simple"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassName(tt.in))
		})
	}
}
