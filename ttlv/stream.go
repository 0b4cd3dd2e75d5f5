package ttlv

import (
	"io"

	"github.com/cloudwego/gopkg/bufiox"
)

// Reader is the byte-stream read contract this codec is built against: a
// consuming read of exactly n bytes (Next), a non-consuming lookahead of
// n bytes (Peek), and Skip/ReadLen for positional bookkeeping. It is
// satisfied directly by bufiox.Reader, a zero-copy buffered reader.
type Reader = bufiox.Reader

// Writer is the byte-stream write contract: Malloc reserves n bytes to
// be filled in place, Flush pushes anything malloc'd out to the
// underlying io.Writer.
type Writer = bufiox.Writer

// NewReader wraps an io.Reader as a Reader suitable for decoding TTLV
// primitives from a socket, file, or any other streaming source.
func NewReader(r io.Reader) Reader {
	return bufiox.NewDefaultReader(r)
}

// NewBytesReader wraps an in-memory buffer as a Reader without copying
// it; useful for tests and for decoding a TTLV already fully buffered in
// memory.
func NewBytesReader(b []byte) Reader {
	return bufiox.NewBytesReader(b)
}

// NewWriter wraps an io.Writer as a Writer suitable for encoding TTLV
// primitives onto a socket, file, or any other streaming sink.
func NewWriter(w io.Writer) Writer {
	return bufiox.NewDefaultWriter(w)
}

// NewBytesWriter appends encoded bytes onto *buf as primitives are
// written, growing it as needed.
func NewBytesWriter(buf *[]byte) Writer {
	return bufiox.NewBytesWriter(buf)
}

// writeBytes is a small helper used by the BigInteger, TextString and
// ByteString encoders: malloc exactly len(b) bytes and copy b into them.
func writeBytes(w Writer, b []byte) error {
	dst, err := w.Malloc(len(b))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// peekExact returns true iff r has at least n bytes available right now
// and they can be peeked without error. Used by IsTagNext/IsTypeNext,
// which must report false rather than error on a short read.
func peekExact(r Reader, n int) ([]byte, bool) {
	b, err := r.Peek(n)
	if err != nil || len(b) != n {
		return nil, false
	}
	return b, true
}
