// Package wire provides the byte-level primitives of the CTXB format: an
// append-only growable Writer, a bounds-checked Reader, and the integrity
// checksum. Multi-byte numerics are little-endian; variable-length integers
// are unsigned LEB128.
package wire

import (
	"encoding/binary"
	"math"
	"time"
)

const initialCap = 64

// Writer is an append-only byte buffer. Capacity doubles on overflow and
// Bytes returns an exact-length view with no trailing garbage. A Writer is
// owned by the encode call that created it and must not be shared.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, initialCap)}
}

func (w *Writer) grow(n int) {
	need := len(w.buf) + n
	if need <= cap(w.buf) {
		return
	}
	c := cap(w.buf)
	if c == 0 {
		c = initialCap
	}
	for c < need {
		c *= 2
	}
	nb := make([]byte, len(w.buf), c)
	copy(nb, w.buf)
	w.buf = nb
}

func (w *Writer) PutByte(b byte) {
	w.grow(1)
	w.buf = append(w.buf, b)
}

// PutUint32 appends v as 4 little-endian bytes.
func (w *Writer) PutUint32(v uint32) {
	w.grow(4)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutFloat64 appends v as 8 little-endian IEEE 754 bytes.
func (w *Writer) PutFloat64(v float64) {
	w.grow(8)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// PutVarint appends v as unsigned LEB128: 7 payload bits per byte, least
// significant group first, high bit set on every byte but the last.
func (w *Writer) PutVarint(v uint64) {
	w.grow(binary.MaxVarintLen64)
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

// PutString appends the UTF-8 bytes of s prefixed with their varint length.
func (w *Writer) PutString(s string) {
	w.PutVarint(uint64(len(s)))
	w.grow(len(s))
	w.buf = append(w.buf, s...)
}

// PutBytes appends p verbatim, with no prefix.
func (w *Writer) PutBytes(p []byte) {
	w.grow(len(p))
	w.buf = append(w.buf, p...)
}

// PutTimestamp appends t as a float64 of milliseconds since the Unix epoch.
func (w *Writer) PutTimestamp(t time.Time) {
	w.PutFloat64(float64(t.UnixMilli()))
}

func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written bytes. The slice aliases the Writer's buffer;
// callers must not write to the Writer afterwards if they keep the slice.
func (w *Writer) Bytes() []byte { return w.buf }
