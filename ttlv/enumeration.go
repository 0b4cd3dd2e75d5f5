package ttlv

import "sync"

// EnumDomain maps the numeric codes valid for a given tag's enumeration
// to their symbolic names. A code with no entry is out-of-domain.
type EnumDomain map[uint32]string

var (
	enumRegistryMu sync.RWMutex
	enumRegistry   = map[Tag]EnumDomain{}
)

// RegisterEnum binds tag to domain, so that future Enumeration decodes
// against that tag validate the numeric code and carry its symbolic
// name. Intended to be called by the schema layer during init(); this
// codec ships no domains of its own.
func RegisterEnum(tag Tag, domain EnumDomain) {
	enumRegistryMu.Lock()
	defer enumRegistryMu.Unlock()
	enumRegistry[tag] = domain
}

func lookupEnum(tag Tag, code uint32) (name string, known bool) {
	enumRegistryMu.RLock()
	defer enumRegistryMu.RUnlock()
	domain, ok := enumRegistry[tag]
	if !ok {
		return "", false
	}
	name, ok = domain[code]
	return name, ok
}

// Enumeration holds a symbolic value from a per-tag enumeration domain.
// Its wire form is identical to an unsigned 32-bit Integer; the
// in-memory value carries both the numeric code and (when a domain is
// registered for Tag) its symbolic name.
type Enumeration struct {
	Tag  Tag
	Code uint32
	Name string // resolved via the domain registered for Tag; "" if none
}

// NewEnumeration constructs an Enumeration from a raw numeric code,
// resolving its symbolic name immediately if a domain is registered for
// tag.
func NewEnumeration(tag Tag, code uint32) Enumeration {
	name, _ := lookupEnum(tag, code)
	return Enumeration{Tag: tag, Code: code, Name: name}
}

// Encode writes the header (type=Enumeration, length=4) then the
// 4-byte unsigned code followed by 4 zero-padding bytes, exactly like
// an unsigned Integer.
func (e Enumeration) Encode(w Writer) error {
	if err := WriteHeader(w, e.Tag, TypeEnumeration, lenInt); err != nil {
		return err
	}
	return writeUnsignedValueArea(w, int64(e.Code))
}

// DecodeEnumeration reads an Enumeration's header and value off r as an
// unsigned Integer, then validates the code against the domain
// registered for tag, if any. An out-of-domain code fails with an
// enumeration value error carrying the observed code; a tag with no
// registered domain decodes successfully with Name left empty.
func DecodeEnumeration(r Reader, tag Tag) (Enumeration, error) {
	length, err := ReadHeader(r, tag, TypeEnumeration)
	if err != nil {
		return Enumeration{}, err
	}
	if length != lenInt {
		return Enumeration{}, invalidLenErrorf("enumeration length: expected %d, observed %d", lenInt, length)
	}
	code, err := readUnsignedValueArea(r)
	if err != nil {
		return Enumeration{}, err
	}

	e := Enumeration{Tag: tag, Code: uint32(code)}
	if domain, ok := enumRegistryFor(tag); ok {
		name, ok := domain[uint32(code)]
		if !ok {
			err := enumValueErrorf("code %#x not in domain registered for tag %s", uint32(code), tag)
			log.Errorf("%s", err)
			return Enumeration{}, err
		}
		e.Name = name
	}
	return e, nil
}

func enumRegistryFor(tag Tag) (EnumDomain, bool) {
	enumRegistryMu.RLock()
	defer enumRegistryMu.RUnlock()
	domain, ok := enumRegistry[tag]
	return domain, ok
}
