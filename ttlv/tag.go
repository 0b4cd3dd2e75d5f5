package ttlv

import "fmt"

// Tag is the 24-bit identifier naming the semantic role of a primitive
// (e.g. "Protocol Version Major"). Only the low 24 bits are meaningful;
// the wire encoding is 3 bytes, big-endian.
type Tag uint32

// A modest registry of common KMIP tags; this codec's own tests and
// fixtures use only a few of them. The schema layer is free to register additional
// tags; an unregistered tag still round-trips correctly, it just prints
// as a hex literal instead of a name.
const (
	TagNone                   Tag = 0x000000
	TagAttribute              Tag = 0x420008
	TagAttributeName          Tag = 0x42000a
	TagAttributeValue         Tag = 0x42000b
	TagBatchCount             Tag = 0x42000d
	TagBatchItem              Tag = 0x42000f
	TagProtocolVersion        Tag = 0x420069
	TagProtocolVersionMajor   Tag = 0x42006a
	TagProtocolVersionMinor   Tag = 0x42006b
	TagRequestHeader          Tag = 0x420077
	TagRequestMessage         Tag = 0x420078
	TagRequestPayload         Tag = 0x420079
	TagOperation              Tag = 0x42005c
	TagUniqueBatchItemID      Tag = 0x420093
	TagAsynchronousIndicator  Tag = 0x420007
	TagCryptographicUsageMask Tag = 0x42002c
	TagKeyFormatType          Tag = 0x420042
	TagComment                Tag = 0x42020e
)

var tagNames = map[Tag]string{
	TagAttribute:              "Attribute",
	TagAttributeName:          "AttributeName",
	TagAttributeValue:         "AttributeValue",
	TagBatchCount:             "BatchCount",
	TagBatchItem:              "BatchItem",
	TagProtocolVersion:        "ProtocolVersion",
	TagProtocolVersionMajor:   "ProtocolVersionMajor",
	TagProtocolVersionMinor:   "ProtocolVersionMinor",
	TagRequestHeader:          "RequestHeader",
	TagRequestMessage:         "RequestMessage",
	TagRequestPayload:         "RequestPayload",
	TagOperation:              "Operation",
	TagUniqueBatchItemID:      "UniqueBatchItemID",
	TagAsynchronousIndicator:  "AsynchronousIndicator",
	TagCryptographicUsageMask: "CryptographicUsageMask",
	TagKeyFormatType:          "KeyFormatType",
	TagComment:                "Comment",
}

// RegisterTag associates a human-readable name with a tag value, for use
// by String() and JSON rendering. Intended to be called by the schema
// layer during init(); this codec ships only the small seed set above.
func RegisterTag(tag Tag, name string) {
	tagNames[tag] = name
}

func (t Tag) hexString() string {
	return fmt.Sprintf("0x%06x", uint32(t)&0xffffff)
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return t.hexString()
}
