package jvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotSizes(t *testing.T) {
	tests := []struct {
		descriptor string
		params     int
		ret        int
	}{
		{"()V", 0, 0},
		{"(Ljava/lang/Object;Ljava/lang/String;)Ljava/lang/Object;", 2, 1},
		{"(IJD[[Ljava/lang/String;[I)J", 7, 2},
		{"(Ljava/lang/String;ILjava/lang/Object;)D", 3, 2},
	}

	for _, tt := range tests {
		params, ret, err := SlotSizes(tt.descriptor)
		require.NoError(t, err, tt.descriptor)
		assert.Equal(t, tt.params, params, tt.descriptor)
		assert.Equal(t, tt.ret, ret, tt.descriptor)
	}
}

func TestSlotSizes_Malformed(t *testing.T) {
	for _, d := range []string{"", "V", "(", "(L;", "(Ljava/lang/Object)V", "()", "()VV", "(Q)V"} {
		_, _, err := SlotSizes(d)
		assert.Error(t, err, d)
	}
}

func TestMethodDescriptor(t *testing.T) {
	assert.Equal(t, "(Ljava/lang/String;I)V", MethodDescriptor(VoidDescriptor, StringDesc, IntDescriptor))
	assert.Equal(t, "La/B;", ObjectDescriptor("a/B"))
}

func TestModifiedUTF8(t *testing.T) {
	for _, s := range []string{"", "plain", "\x00", "é", "€", "\U0001F600", "\x00ÿ\x7f"} {
		encoded := EncodeModifiedUTF8(s)
		assert.Equal(t, len(encoded), ModifiedUTF8Len(s), "%q", s)

		decoded, err := DecodeModifiedUTF8(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}

	assert.Equal(t, []byte{0xC0, 0x80}, EncodeModifiedUTF8("\x00"))
	assert.Len(t, EncodeModifiedUTF8("\U0001F600"), 6)
}
