package ttlv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	when := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewDateTime(TagComment, when).Encode(w))
	require.NoError(t, w.Flush())

	r := NewBytesReader(buf)
	d, err := DecodeDateTime(r, TagComment)
	require.NoError(t, err)
	assert.True(t, when.Equal(d.Value))
}

func TestDateTimeWireFormatMatchesLongInteger(t *testing.T) {
	when := time.Unix(1000, 0).UTC()
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewDateTime(TagComment, when).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 09 00000008 00000000000003E8"), buf)
}
