// Package codec provides pluggable payload codecs over JSON-shaped values.
// The binary frame codec uses JSON for its basic-level body and for the
// original-size baseline; the remaining codecs exist as interchangeable
// alternatives and as size-report baselines.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
