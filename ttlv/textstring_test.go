package ttlv

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLen(t *testing.T) {
	assert.Equal(t, 0, padLen(0))
	assert.Equal(t, 7, padLen(1))
	assert.Equal(t, 1, padLen(7))
	assert.Equal(t, 0, padLen(8))
}

func TestTextStringEncode(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewTextString(TagComment, "Hello World").Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 07 0000000B 48656C6C6F20576F726C64 0000000000"), buf)
}

func TestTextStringRoundTripEmpty(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewTextString(TagComment, "").Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 07 00000000"), buf)

	r := NewBytesReader(buf)
	s, err := DecodeTextString(r, TagComment)
	require.NoError(t, err)
	assert.Empty(t, s.Value)
}

func TestTextStringRoundTripAligned(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewTextString(TagComment, "12345678").Encode(w))
	require.NoError(t, w.Flush())
	assert.Len(t, buf, lenHeader+8)

	r := NewBytesReader(buf)
	s, err := DecodeTextString(r, TagComment)
	require.NoError(t, err)
	assert.Equal(t, "12345678", s.Value)
}

func TestTextStringDecodeNonZeroPadding(t *testing.T) {
	r := NewBytesReader(Hex2bytes("42020E 07 00000001 41 000000000000FF"))
	_, err := DecodeTextString(r, TagComment)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrReadValue))
}
