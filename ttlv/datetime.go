package ttlv

import "time"

// DateTime is a thin alias of LongInteger: identical wire encoding,
// discriminated only by its type byte. Value is carried on the wire as
// whole seconds since the Unix epoch, matching KMIP 1.1's DateTime
// semantics; Encode drops any sub-second part.
type DateTime struct {
	Tag   Tag
	Value time.Time
}

// NewDateTime constructs a DateTime.
func NewDateTime(tag Tag, value time.Time) DateTime {
	return DateTime{Tag: tag, Value: value}
}

// Encode writes the header (type=DateTime, length=8) then the 8-byte
// signed big-endian Unix timestamp.
func (d DateTime) Encode(w Writer) error {
	return encodeLongIntegerLike(w, d.Tag, TypeDateTime, d.Value.Unix())
}

// DecodeDateTime reads a DateTime's header and value off r, validating
// the tag and that length == 8.
func DecodeDateTime(r Reader, tag Tag) (DateTime, error) {
	value, err := decodeLongIntegerLike(r, tag, TypeDateTime)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Tag: tag, Value: time.Unix(value, 0).UTC()}, nil
}
