package ttlv

import "math/big"

// BigInteger is the arbitrary-precision signed primitive. Its encoded
// length is always a strictly positive multiple of 8 bytes: the
// minimal two's-complement magnitude, left-padded with sign-extension
// bytes to the next 8-byte boundary.
type BigInteger struct {
	Tag   Tag
	Value *big.Int
}

// NewBigInteger constructs a BigInteger. A nil value is treated as zero.
func NewBigInteger(tag Tag, value *big.Int) BigInteger {
	if value == nil {
		value = new(big.Int)
	}
	return BigInteger{Tag: tag, Value: value}
}

// Encode writes the header then the padded two's-complement bytes.
//
// The original source this codec was translated from pads the minimal
// magnitude to a fixed 64 bits computed before the final bit length is
// known, which silently fails to round up for magnitudes >= 2^63 (it
// reduces modulo 64 instead of rounding up to the next multiple). This
// implementation rounds up against the actual minimal bit length, so
// the encoded form always has at least one leading sign-extension bit
// regardless of magnitude.
func (b BigInteger) Encode(w Writer) error {
	encoded := encodeTwosComplement(b.Value)

	if err := WriteHeader(w, b.Tag, TypeBigInteger, len(encoded)); err != nil {
		return err
	}
	return writeBytes(w, encoded)
}

// DecodeBigInteger reads a BigInteger's header and value off r,
// validating the tag and that length is a positive multiple of 8.
func DecodeBigInteger(r Reader, tag Tag) (BigInteger, error) {
	length, err := ReadHeader(r, tag, TypeBigInteger)
	if err != nil {
		return BigInteger{}, err
	}
	if length == 0 || length%8 != 0 {
		return BigInteger{}, invalidLenErrorf("big integer length: expected positive multiple of 8, observed %d", length)
	}

	valBytes, err := r.Next(int(length))
	if err != nil {
		return BigInteger{}, shortReadError("big integer value", int(length), len(valBytes))
	}

	return BigInteger{Tag: tag, Value: decodeTwosComplement(valBytes)}, nil
}

// encodeTwosComplement returns v's minimal two's-complement big-endian
// representation, left-padded with sign-extension bytes to the next
// multiple of 8 bytes (minimum 8 bytes, never zero-length).
func encodeTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return make([]byte, 8)
	}

	// magnitudeBits is the number of bits needed to hold |v|; add one bit
	// of headroom so the sign bit is never ambiguous, then round up to a
	// whole number of 64-bit words.
	magnitudeBits := v.BitLen() + 1
	totalBytes := ((magnitudeBits + 63) / 64) * 8

	if v.Sign() > 0 {
		out := make([]byte, totalBytes)
		v.FillBytes(out)
		return out
	}

	// Negative: two's complement of the padded magnitude is
	// (1 << (totalBytes*8)) + v, a non-negative value that FillBytes then
	// packs as plain big-endian bytes.
	mod := new(big.Int).Lsh(big.NewInt(1), uint(totalBytes*8))
	twos := new(big.Int).Add(mod, v)
	out := make([]byte, totalBytes)
	twos.FillBytes(out)
	return out
}

// decodeTwosComplement interprets data as a two's-complement signed
// big-endian integer: the high bit of the first byte determines sign.
func decodeTwosComplement(data []byte) *big.Int {
	n := new(big.Int).SetBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(data))*8)
		n.Sub(n, mod)
	}
	return n
}
