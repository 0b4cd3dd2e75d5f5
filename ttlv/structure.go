package ttlv

// StructureHeader is the header-only view of a Structure primitive: its
// value is an opaque concatenation of child TTLVs, decoded by the
// schema layer that knows which children a given tag's Structure
// carries. This codec reads/writes only the three header fields and
// hands back (or takes) the raw value bytes.
type StructureHeader struct {
	Tag    Tag
	Length int // byte count of the concatenated child TTLVs
}

// WriteStructureHeader writes a Structure's header with the given
// length. Callers write the length-many bytes of encoded children
// immediately afterward.
func WriteStructureHeader(w Writer, tag Tag, length int) error {
	return WriteHeader(w, tag, TypeStructure, length)
}

// ReadStructureHeader reads a Structure's header off r and returns the
// byte count of its value; the caller is responsible for reading
// exactly that many further bytes (typically via a schema-aware
// decoder) before the next sibling's header can be read.
func ReadStructureHeader(r Reader, tag Tag) (StructureHeader, error) {
	length, err := ReadHeader(r, tag, TypeStructure)
	if err != nil {
		return StructureHeader{}, err
	}
	return StructureHeader{Tag: tag, Length: int(length)}, nil
}

// SkipValue consumes and discards a Structure's length bytes of child
// data. Useful for a streaming parser that wants to skip an entire
// substructure it does not need, having already peeked its tag.
func (h StructureHeader) SkipValue(r Reader) error {
	if h.Length == 0 {
		return nil
	}
	b, err := r.Next(h.Length)
	if err != nil {
		return shortReadError("structure value", h.Length, len(b))
	}
	return nil
}

// ReadValue consumes and returns a copy of a Structure's length bytes
// of raw child data, for callers that want to hand the concatenated
// child TTLVs to a schema-aware decoder without re-deriving the length.
func (h StructureHeader) ReadValue(r Reader) ([]byte, error) {
	if h.Length == 0 {
		return nil, nil
	}
	b, err := r.Next(h.Length)
	if err != nil {
		return nil, shortReadError("structure value", h.Length, len(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
