package ttlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteStringRoundTrip(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewByteString(TagComment, []byte{0x01, 0x02, 0x03}).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 08 00000003 010203 00000000 00"), buf)

	r := NewBytesReader(buf)
	b, err := DecodeByteString(r, TagComment)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b.Value)
}

func TestByteStringRoundTripAligned(t *testing.T) {
	val := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewByteString(TagComment, val).Encode(w))
	require.NoError(t, w.Flush())
	assert.Len(t, buf, lenHeader+8)

	r := NewBytesReader(buf)
	b, err := DecodeByteString(r, TagComment)
	require.NoError(t, err)
	assert.Equal(t, val, b.Value)
}
