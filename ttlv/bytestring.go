package ttlv

// ByteString is the raw-octet primitive; same framing as TextString,
// but carries no character semantics.
type ByteString struct {
	Tag   Tag
	Value []byte
}

// NewByteString constructs a ByteString.
func NewByteString(tag Tag, value []byte) ByteString {
	return ByteString{Tag: tag, Value: value}
}

// Encode writes the header (length = len(Value)), the raw bytes of
// Value, then zero padding to the next 8-byte boundary.
func (b ByteString) Encode(w Writer) error {
	return encodeStringLike(w, b.Tag, TypeByteString, b.Value)
}

// DecodeByteString reads a ByteString's header and value off r,
// validating the tag and that the padding bytes are all zero.
func DecodeByteString(r Reader, tag Tag) (ByteString, error) {
	raw, err := decodeStringLike(r, tag, TypeByteString)
	if err != nil {
		return ByteString{}, err
	}
	return ByteString{Tag: tag, Value: raw}, nil
}
