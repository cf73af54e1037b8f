package wire

import "math/bits"

// Checksum is an order-sensitive rotate-XOR accumulator over b. It is a
// best-effort guard against incidental corruption, not a CRC and not
// tamper-proof: do not rely on it for anything adversarial.
func Checksum(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = bits.RotateLeft32(h, 5) ^ uint32(c)
	}
	return h
}
