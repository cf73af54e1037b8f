package framewire

import (
	"fmt"
	"sort"

	"github.com/unkn0wn-root/framewire/frame"
	"github.com/unkn0wn-root/framewire/internal/dict"
	"github.com/unkn0wn-root/framewire/internal/wire"
)

// Value type tags. Every value is written as one tag byte followed by its
// payload; the aggressive string form below is the one exception.
const (
	tagString     byte = 0x00 // varint-length-prefixed UTF-8
	tagDictString byte = 0x01 // 1-byte primitive dictionary code
	tagNumber     byte = 0x02 // float64, always 8 bytes regardless of magnitude
	tagBool       byte = 0x03 // 1 byte
	tagArray      byte = 0x04 // varint count + recursive elements
	tagObject     byte = 0x05 // varint field count + (key string + recursive value) each
	tagNull       byte = 0x06
)

func encodeValue(w *wire.Writer, v frame.Value) {
	switch v := v.(type) {
	case frame.String:
		if code, ok := dict.PrimitiveCode(string(v)); ok {
			w.PutByte(tagDictString)
			w.PutByte(code)
		} else {
			w.PutByte(tagString)
			w.PutString(string(v))
		}
	case frame.Number:
		w.PutByte(tagNumber)
		w.PutFloat64(float64(v))
	case frame.Bool:
		w.PutByte(tagBool)
		if v {
			w.PutByte(1)
		} else {
			w.PutByte(0)
		}
	case frame.Array:
		w.PutByte(tagArray)
		w.PutVarint(uint64(len(v)))
		for _, e := range v {
			encodeValue(w, e)
		}
	case frame.Object:
		w.PutByte(tagObject)
		w.PutVarint(uint64(len(v)))
		for _, k := range sortedKeys(v) {
			w.PutString(k)
			encodeValue(w, v[k])
		}
	default: // frame.Null or nil
		w.PutByte(tagNull)
	}
}

// encodeAggressiveValue writes a string as a single varint dictionary code,
// with 0 meaning "custom string follows". Non-string values fall back to
// the standard tagged form; string payloads dominate this domain, so the
// asymmetry is the accepted trade.
func encodeAggressiveValue(w *wire.Writer, v frame.Value) {
	if s, ok := v.(frame.String); ok {
		if code, ok := dict.PrimitiveCode(string(s)); ok {
			w.PutVarint(uint64(code))
		} else {
			w.PutVarint(0)
			w.PutString(string(s))
		}
		return
	}
	encodeValue(w, v)
}

func (c *Codec) decodeValue(r *wire.Reader, depth int) (frame.Value, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return c.decodeValuePayload(r, tag, depth)
}

func (c *Codec) decodeValuePayload(r *wire.Reader, tag byte, depth int) (frame.Value, error) {
	if depth > c.maxDepth {
		return nil, ErrTooDeep
	}
	switch tag {
	case tagString:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return frame.String(s), nil
	case tagDictString:
		code, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		return frame.String(dict.PrimitiveString(code)), nil
	case tagNumber:
		n, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return frame.Number(n), nil
	case tagBool:
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		return frame.Bool(b != 0), nil
	case tagArray:
		n, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		// each element is at least one byte; reject counts the buffer
		// cannot possibly satisfy before allocating
		if n > uint64(r.Remaining()) {
			return nil, wire.ErrShortBuffer
		}
		arr := make(frame.Array, n)
		for i := range arr {
			e, err := c.decodeValue(r, depth+1)
			if err != nil {
				return nil, err
			}
			arr[i] = e
		}
		return arr, nil
	case tagObject:
		n, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		if n > uint64(r.Remaining()) {
			return nil, wire.ErrShortBuffer
		}
		obj := make(frame.Object, n)
		for i := uint64(0); i < n; i++ {
			k, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			v, err := c.decodeValue(r, depth+1)
			if err != nil {
				return nil, err
			}
			obj[k] = v
		}
		return obj, nil
	case tagNull:
		return frame.Null{}, nil
	default:
		// unknown tag: a corrupted-but-checksummed buffer should still
		// decode best-effort, so map it to null instead of failing
		c.log.Debug("unknown value tag", Fields{"tag": tag})
		return frame.Null{}, nil
	}
}

// decodeAggressiveValue mirrors encodeAggressiveValue. The leading varint
// is 0 (custom string follows), a primitive dictionary code, or a standard
// type tag for the non-string fallback. Unrecognized codes synthesize a
// placeholder string.
func (c *Codec) decodeAggressiveValue(r *wire.Reader, depth int) (frame.Value, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	switch {
	case v == 0:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return frame.String(s), nil
	case v >= uint64(tagNumber) && v <= uint64(tagNull):
		return c.decodeValuePayload(r, byte(v), depth)
	case v >= uint64(dict.PrimitiveBase) && v <= 0xFF:
		return frame.String(dict.PrimitiveString(byte(v))), nil
	default:
		return frame.String(fmt.Sprintf("unknown_value_%d", v)), nil
	}
}

func sortedKeys(obj frame.Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
