package kmetadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleOf_GroupsAndSorts(t *testing.T) {
	m := ModuleOf([]int{1, 9, 0}, []string{
		"org/gradle/kotlin/dsl/ImplementationConfigurationAccessorsKt",
		"org/gradle/kotlin/dsl/Accessors1abcKt",
		"other/BKt",
		"org/gradle/kotlin/dsl/Accessors1abcKt",
	})

	require.Len(t, m.Parts, 2)
	assert.Equal(t, "org.gradle.kotlin.dsl", m.Parts[0].FqName)
	assert.Equal(t, []string{"Accessors1abcKt", "ImplementationConfigurationAccessorsKt"}, m.Parts[0].ShortClassNames)
	assert.Equal(t, "other", m.Parts[1].FqName)

	assert.Equal(t, []string{
		"org/gradle/kotlin/dsl/Accessors1abcKt",
		"org/gradle/kotlin/dsl/ImplementationConfigurationAccessorsKt",
		"other/BKt",
	}, m.ClassNames())
}

func TestModule_Bytes(t *testing.T) {
	m := ModuleOf([]int{1, 9, 0}, []string{"org/gradle/kotlin/dsl/AKt"})

	want := []byte{
		0, 0, 0, 3, 0, 0, 0, 1, 0, 0, 0, 9, 0, 0, 0, 0, // version
		0, 0, 0, 0, // flags
		0x0a, 0x1c,
		0x0a, 0x15,
	}
	want = append(want, "org.gradle.kotlin.dsl"...)
	want = append(want, 0x12, 0x03, 'A', 'K', 't')

	assert.Equal(t, want, m.Bytes())
}

func TestModule_NoFlagsBeforeOneFour(t *testing.T) {
	m := &Module{Version: []int{1, 1, 16}, Flags: 7}

	assert.Equal(t, []byte{0, 0, 0, 3, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 16}, m.Bytes())
}

func TestParseModule_RoundTrip(t *testing.T) {
	m := ModuleOf([]int{1, 9, 0}, []string{"org/gradle/kotlin/dsl/AKt", "org/gradle/kotlin/dsl/BKt"})
	m.Flags = 1

	parsed, err := ParseModule(m.Bytes())
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestParseModule_Errors(t *testing.T) {
	_, err := ParseModule(nil)
	assert.Error(t, err)

	_, err = ParseModule([]byte{0xff, 0, 0, 0})
	assert.Error(t, err)

	_, err = ParseModule([]byte{0, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 9, 0, 0})
	assert.Error(t, err)
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, versionAtLeast([]int{1, 4, 0}, 1, 4))
	assert.True(t, versionAtLeast([]int{2, 0}, 1, 4))
	assert.False(t, versionAtLeast([]int{1, 3, 70}, 1, 4))
	assert.False(t, versionAtLeast(nil, 1, 4))
}
