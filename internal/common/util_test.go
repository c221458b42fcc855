package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipeByteArray_ZeroesInPlace(t *testing.T) {
	b := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	WipeByteArray(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestWipeByteArray_EmptyIsNoop(t *testing.T) {
	b := []byte{}
	WipeByteArray(b)
	assert.Empty(t, b)
}
