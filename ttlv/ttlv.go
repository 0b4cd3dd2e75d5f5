package ttlv

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// TTLV is a byte slice that begins with a TTLV-encoded block. The
// methods of TTLV operate on the TTLV value located at the beginning of
// the slice. Any bytes in the slice after the end of the TTLV are
// ignored. Use TTLV.Next() to return a new slice starting after the
// current value.
//
// Unlike the Integer/LongInteger/... types in this package, which parse
// a primitive field-by-field off a Reader, TTLV is a zero-copy view
// over an already-assembled buffer: exactly the shape a streaming
// parser needs when it must peek at a tag or type before deciding which
// concrete decoder to hand the bytes to. It is not schema-aware: it
// does not know, for instance, that a Structure's children have any
// particular meaning, only how to slice and format them generically.
type TTLV []byte

// Tag returns the tag encoded in the TTLV header. Returns TagNone if
// the header is truncated.
func (t TTLV) Tag() Tag {
	if len(t) < lenTag {
		return TagNone
	}
	return Tag(uint32(t[0])<<16 | uint32(t[1])<<8 | uint32(t[2]))
}

// Type returns the type encoded in the TTLV header. Returns the zero
// Type if the header is truncated.
func (t TTLV) Type() Type {
	if len(t) < lenHeader-lenLength {
		return Type(0)
	}
	return Type(t[3])
}

// Len returns the length encoded in the TTLV header: the length of the
// value segment only, not counting padding or the header itself. It
// does not validate that the slice is actually that long.
func (t TTLV) Len() int {
	if len(t) < lenHeader {
		return 0
	}
	return int(binary.BigEndian.Uint32(t[4:8]))
}

// FullLen returns the expected length of the entire TTLV block (header
// + value + padding), based on the type and length encoded in the
// header. Panics if the type encoded in the header is not one of the
// ten KMIP §9.1 discriminants.
func (t TTLV) FullLen() int {
	switch t.Type() {
	case TypeInterval, TypeDateTime, TypeBoolean, TypeEnumeration, TypeLongInteger, TypeInteger:
		return lenHeader + 8
	case TypeByteString, TypeTextString:
		l := t.Len() + lenHeader
		return l + padLen(t.Len())
	case TypeBigInteger, TypeStructure:
		return t.Len() + lenHeader
	}
	panic(fmt.Sprintf("ttlv: invalid type: %#x", byte(t.Type())))
}

// ValueRaw returns the raw bytes of the value segment, not including
// padding. If the slice is shorter than the header claims, it returns
// whatever bytes remain rather than panicking.
func (t TTLV) ValueRaw() []byte {
	l := t.Len()
	if l == 0 {
		return nil
	}
	if len(t) < lenHeader+l {
		return t[lenHeader:]
	}
	return t[lenHeader : lenHeader+l]
}

// Value returns the value of the TTLV converted to an idiomatic Go
// type. Panics if Type() is not one of the ten KMIP §9.1 discriminants.
func (t TTLV) Value() interface{} {
	switch t.Type() {
	case TypeInterval:
		return t.ValueInterval()
	case TypeDateTime:
		return t.ValueDateTime()
	case TypeByteString:
		return t.ValueByteString()
	case TypeTextString:
		return t.ValueTextString()
	case TypeBoolean:
		return t.ValueBoolean()
	case TypeEnumeration:
		return t.ValueEnumeration()
	case TypeBigInteger:
		return t.ValueBigInteger()
	case TypeLongInteger:
		return t.ValueLongInteger()
	case TypeInteger:
		return t.ValueInteger()
	case TypeStructure:
		return t.ValueStructure()
	}
	panic(fmt.Sprintf("ttlv: invalid type: %#x", byte(t.Type())))
}

func (t TTLV) ValueInteger() int32 {
	return int32(binary.BigEndian.Uint32(t.ValueRaw()))
}

func (t TTLV) ValueLongInteger() int64 {
	return int64(binary.BigEndian.Uint64(t.ValueRaw()))
}

func (t TTLV) ValueBigInteger() *big.Int {
	return decodeTwosComplement(t.ValueRaw())
}

func (t TTLV) ValueEnumeration() uint32 {
	return binary.BigEndian.Uint32(t.ValueRaw())
}

func (t TTLV) ValueBoolean() bool {
	return t.ValueRaw()[7] != 0
}

func (t TTLV) ValueTextString() string {
	return string(t.ValueRaw())
}

func (t TTLV) ValueByteString() []byte {
	return t.ValueRaw()
}

func (t TTLV) ValueDateTime() time.Time {
	return time.Unix(t.ValueLongInteger(), 0).UTC()
}

func (t TTLV) ValueInterval() time.Duration {
	return time.Duration(binary.BigEndian.Uint32(t.ValueRaw())) * time.Second
}

// ValueStructure returns the raw, un-recursed value bytes of a
// Structure TTLV: the concatenation of its children's encodings. Schema
// code walks this with Next() to pull out each child.
func (t TTLV) ValueStructure() TTLV {
	return t.ValueRaw()
}

// ValidHeader performs the structural checks the header codec itself
// enforces: known type, length consistent with that type's fixed
// framing (where applicable). It does not check whether len(t) is
// actually long enough to hold the declared value; see Valid for that.
func (t TTLV) ValidHeader() error {
	if len(t) < lenHeader {
		return readValueErrorf("header truncated: have %d byte(s), need %d", len(t), lenHeader)
	}
	switch t.Type() {
	case TypeStructure, TypeTextString, TypeByteString:
		// any length is valid
	case TypeInteger, TypeEnumeration, TypeInterval:
		if t.Len() != lenInt {
			return invalidLenErrorf("%s length: expected %d, observed %d", t.Type(), lenInt, t.Len())
		}
	case TypeLongInteger, TypeBoolean, TypeDateTime:
		if t.Len() != lenLongInt {
			return invalidLenErrorf("%s length: expected %d, observed %d", t.Type(), lenLongInt, t.Len())
		}
	case TypeBigInteger:
		if t.Len() == 0 || t.Len()%8 != 0 {
			return invalidLenErrorf("big integer length: expected positive multiple of 8, observed %d", t.Len())
		}
	default:
		return typeErrorf("unrecognized type discriminant %#x", byte(t.Type()))
	}
	return nil
}

// Valid performs ValidHeader's checks, then confirms the slice actually
// holds FullLen() bytes, recursing into a Structure's children.
func (t TTLV) Valid() error {
	if err := t.ValidHeader(); err != nil {
		return err
	}
	if len(t) < t.FullLen() {
		return readValueErrorf("value truncated: have %d byte(s), need %d", len(t), t.FullLen())
	}
	if t.Type() == TypeStructure {
		inner := t.ValueStructure()
		for len(inner) > 0 {
			if err := inner.Valid(); err != nil {
				return err
			}
			inner = inner.Next()
		}
	}
	return nil
}

// Next returns the slice starting immediately after this TTLV's
// encoding (header + value + padding), or nil if this TTLV is invalid
// or there is nothing left. Used to walk a Structure's children or a
// sequence of top-level TTLVs.
func (t TTLV) Next() TTLV {
	if t.Valid() != nil {
		return nil
	}
	n := t[t.FullLen():]
	if len(n) == 0 {
		return nil
	}
	return n
}

// String returns an indented, human-readable dump of t (recursing into
// Structures), in the style of Print.
func (t TTLV) String() string {
	var sb strings.Builder
	_ = Print(&sb, "", "  ", t)
	return sb.String()
}

// Print writes an indented dump of t to w, one line per primitive,
// recursing into Structures. Enumeration values are rendered with their
// symbolic name when a domain is registered for the tag.
func Print(w io.Writer, prefix, indent string, t TTLV) error {
	tag := t.Tag()
	typ := t.Type()
	l := t.Len()

	fmt.Fprintf(w, "%s%v (%s/%d):", prefix, tag, typ.String(), l)

	if err := t.Valid(); err != nil {
		fmt.Fprintf(w, " (%s)", err.Error())
		return err
	}

	switch typ {
	case TypeByteString:
		fmt.Fprintf(w, " %#x", t.ValueByteString())
	case TypeStructure:
		childIndent := prefix + indent
		c := t.ValueStructure()
		for c != nil {
			fmt.Fprint(w, "\n")
			if err := Print(w, childIndent, indent, c); err != nil {
				return err
			}
			c = c.Next()
		}
	case TypeEnumeration:
		code := t.ValueEnumeration()
		if name, ok := lookupEnum(tag, code); ok {
			fmt.Fprintf(w, " %s", name)
		} else {
			fmt.Fprintf(w, " %#x", code)
		}
	default:
		fmt.Fprintf(w, " %v", t.Value())
	}
	return nil
}

// PrintPrettyHex writes a dump of t to w showing the raw hex bytes of
// each header field and value, recursing into Structures. Intended for
// debugging wire-format mismatches byte by byte.
func PrintPrettyHex(w io.Writer, prefix, indent string, t TTLV) error {
	if err := t.Valid(); err != nil {
		fmt.Fprintf(w, "??? %s", hex.EncodeToString(t))
		return err
	}
	fmt.Fprintf(w, "%s%s | %s | %s", prefix, hex.EncodeToString(t[0:3]), hex.EncodeToString(t[3:4]), hex.EncodeToString(t[4:8]))

	if t.Type() == TypeStructure {
		childIndent := prefix + indent
		c := t.ValueStructure()
		for c != nil {
			fmt.Fprint(w, "\n")
			if err := PrintPrettyHex(w, childIndent, indent, c); err != nil {
				return err
			}
			c = c.Next()
		}
		return nil
	}
	fmt.Fprintf(w, " | %s", hex.EncodeToString(t[lenHeader:t.FullLen()]))
	return nil
}

// MarshalJSON renders t as a debug/interop JSON object:
// {"tag":...,"type":...,"value":...}. Tag and enumeration names are
// resolved through the same registries String()/Print use; a Structure
// omits "type" and renders its children as a JSON array. This is not a
// schema-aware encoding: it does not know, for instance, that an
// AttributeValue's enumeration domain depends on a sibling
// AttributeName, so generic attribute containers render as plain
// tag/type/value triples. There is no matching JSON decoder.
func (t TTLV) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	if err := t.Valid(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`{"tag":"`)
	sb.WriteString(t.Tag().String())
	if t.Type() != TypeStructure {
		sb.WriteString(`","type":"`)
		sb.WriteString(t.Type().String())
	}
	sb.WriteString(`","value":`)

	switch t.Type() {
	case TypeBoolean:
		sb.WriteString(strconv.FormatBool(t.ValueBoolean()))
	case TypeEnumeration:
		code := t.ValueEnumeration()
		if name, ok := lookupEnum(t.Tag(), code); ok {
			sb.WriteString(strconv.Quote(name))
		} else {
			sb.WriteString(strconv.Quote(fmt.Sprintf("%#08x", code)))
		}
	case TypeInteger:
		sb.WriteString(strconv.Itoa(int(t.ValueInteger())))
	case TypeLongInteger:
		sb.WriteString(strconv.FormatInt(t.ValueLongInteger(), 10))
	case TypeBigInteger:
		sb.WriteString(t.ValueBigInteger().String())
	case TypeTextString:
		val, err := json.Marshal(t.ValueTextString())
		if err != nil {
			return nil, err
		}
		sb.Write(val)
	case TypeByteString:
		sb.WriteString(strconv.Quote(hex.EncodeToString(t.ValueByteString())))
	case TypeStructure:
		sb.WriteString("[")
		c := t.ValueStructure()
		for len(c) > 0 {
			v, err := c.MarshalJSON()
			if err != nil {
				return nil, err
			}
			sb.Write(v)
			c = c.Next()
			if len(c) > 0 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("]")
	case TypeDateTime:
		val, err := t.ValueDateTime().MarshalJSON()
		if err != nil {
			return nil, err
		}
		sb.Write(val)
	case TypeInterval:
		sb.WriteString(strconv.FormatInt(int64(t.ValueInterval()/time.Second), 10))
	}

	sb.WriteString(`}`)
	return []byte(sb.String()), nil
}

// Hex2bytes converts a hex string to bytes, stripping any non-hex
// characters first (so fixtures can be written with spaces and pipes
// for readability, as in this package's tests). Panics if an odd number
// of hex digits remains after stripping.
func Hex2bytes(s string) []byte {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'F':
		case r >= 'a' && r <= 'f':
		default:
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
