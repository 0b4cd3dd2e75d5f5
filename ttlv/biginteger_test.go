package ttlv

import (
	"math/big"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigIntegerEncodeOne(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewBigInteger(TagComment, big.NewInt(1)).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 04 00000008 0000000000000001"), buf)
}

func TestBigIntegerEncodeNegativeOne(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewBigInteger(TagComment, big.NewInt(-1)).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 04 00000008 FFFFFFFFFFFFFFFF"), buf)
}

func TestBigIntegerEncodeZero(t *testing.T) {
	var buf []byte
	w := NewBytesWriter(&buf)
	require.NoError(t, NewBigInteger(TagComment, nil).Encode(w))
	require.NoError(t, w.Flush())
	assert.Equal(t, Hex2bytes("42020E 04 00000008 0000000000000000"), buf)
}

func TestBigIntegerRoundTripVariousMagnitudes(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(-128),
		big.NewInt(127),
		new(big.Int).Lsh(big.NewInt(1), 62),  // 2^62, below 2^63
		new(big.Int).Lsh(big.NewInt(1), 63),  // the bug-fix boundary
		new(big.Int).Lsh(big.NewInt(1), 64),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 70)),
	}
	for _, v := range values {
		var buf []byte
		w := NewBytesWriter(&buf)
		require.NoError(t, NewBigInteger(TagComment, v).Encode(w))
		require.NoError(t, w.Flush())

		r := NewBytesReader(buf)
		decoded, err := DecodeBigInteger(r, TagComment)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(decoded.Value), "expected %s, got %s", v, decoded.Value)
		assert.Zero(t, len(buf)%8, "encoded length must be multiple of 8")
	}
}

// TestBigIntegerEncodeRoundsUpAtSignBoundary exercises the design note
// in SPEC_FULL.md §9: a magnitude of exactly 2^63 needs a full extra
// word of sign-extension padding, which a fixed-64-bit-then-mod scheme
// would fail to add.
func TestBigIntegerEncodeRoundsUpAtSignBoundary(t *testing.T) {
	v := new(big.Int).Lsh(big.NewInt(1), 63)
	encoded := encodeTwosComplement(v)
	assert.Len(t, encoded, 16)
	assert.Equal(t, byte(0x00), encoded[0])
}

func TestBigIntegerDecodeInvalidLength(t *testing.T) {
	r := NewBytesReader(Hex2bytes("42020E 04 00000003 010203"))
	_, err := DecodeBigInteger(r, TagComment)
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidPrimitiveLen))
}
