// Package ttlv implements the KMIP 1.1 TTLV (Tag-Type-Length-Value)
// primitive wire encoding described in §9.1 of the specification: the
// nine primitive variants (Integer, LongInteger, BigInteger,
// Enumeration, Boolean, TextString, ByteString, DateTime, Interval) plus
// the Structure header, each encoded/decoded against a small streaming
// Reader/Writer contract.
//
// Each primitive is a plain struct carrying its Tag and decoded value,
// with an Encode(Writer) error method and a package-level
// Decode<Name>(Reader, Tag, ...) (T, error) function. Header.go's
// ReadHeader/WriteHeader and the IsTagNext/IsTypeNext lookahead
// predicates are shared by every primitive and are the tools a
// streaming parser uses to dispatch on an upcoming tag or type without
// consuming bytes.
//
// TTLV, in ttlv.go, is a separate, schema-blind convenience type: a
// zero-copy []byte view over an already encoded buffer, useful for
// generic traversal, debug printing, and JSON rendering when the caller
// does not want to decode into a concrete primitive struct up front.
//
// This package does not know how tags compose into message structures;
// that belongs to a schema layer built on top of it.
package ttlv
