package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = New("sentinel")

func TestWrapf_PreservesIdentity(t *testing.T) {
	err := Wrapf(errSentinel, "emitting %s", "AccessorsKt")

	require.Error(t, err)
	assert.True(t, Is(err, errSentinel))
	assert.Contains(t, err.Error(), "emitting AccessorsKt")
}

func TestWithHint_IsFlattened(t *testing.T) {
	err := WithHint(New("bad schema"), "check the type notation")

	assert.Equal(t, "check the type notation", FlattenHints(err))
}

func TestJoin_KeepsBoth(t *testing.T) {
	other := New("other")
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}
