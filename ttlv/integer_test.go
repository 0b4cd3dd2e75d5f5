package ttlv

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerEncode(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewInteger(TagComment, 8).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 02 00000004 00000008 00000000"), buf)
}

func TestIntegerDecode(t *testing.T) {
	r := NewBytesReader(Hex2bytes("42020E 02 00000004 00000008 00000000"))
	i, err := DecodeInteger(r, TagComment, false)
	require.NoError(t, err)
	assert.EqualValues(t, 8, i.Value)
	assert.False(t, i.Unsigned)
}

func TestIntegerRoundTripNegative(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewInteger(TagComment, -1).Encode(w))
	require.NoError(t, w.Flush())

	r := NewBytesReader(buf)
	i, err := DecodeInteger(r, TagComment, false)
	require.NoError(t, err)
	assert.EqualValues(t, -1, i.Value)
}

func TestIntegerUnsignedRoundTrip(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewUnsignedInteger(TagComment, IntegerMaxUnsigned).Encode(w))
	require.NoError(t, w.Flush())

	r := NewBytesReader(buf)
	i, err := DecodeInteger(r, TagComment, true)
	require.NoError(t, err)
	assert.EqualValues(t, IntegerMaxUnsigned, i.Value)
}

func TestIntegerValidateRange(t *testing.T) {
	i := Integer{Tag: TagComment, Value: IntegerMax + 1}
	err := i.Validate()
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrRange))
}

func TestIntegerValidateUnsignedRange(t *testing.T) {
	i := Integer{Tag: TagComment, Unsigned: true, Value: -1}
	err := i.Validate()
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrRange))
}

func TestIntegerDecodeWrongLength(t *testing.T) {
	r := NewBytesReader(Hex2bytes("42020E 02 00000002 0008"))
	_, err := DecodeInteger(r, TagComment, false)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidPrimitiveLen))
}

func TestIntegerDecodeNonZeroPadding(t *testing.T) {
	r := NewBytesReader(Hex2bytes("42020E 02 00000004 00000008 000000FF"))
	_, err := DecodeInteger(r, TagComment, false)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrReadValue))
}
