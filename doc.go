// Package framewire implements a compact, versioned, self-describing binary
// codec for semantic frames (typed role/value records). It targets a 60-80%
// size reduction against the JSON form of the same frame.
//
// Components:
//   - frame: the Frame/Value model (closed frame-type enum, recursive value tree).
//   - internal/dict: dictionary tables mapping frame types, common roles and
//     common primitive strings to 1-byte codes.
//   - internal/wire: Writer/Reader byte primitives (varint, length-prefixed
//     strings, little-endian numerics) and the integrity checksum.
//   - codec: pluggable payload codecs (JSON, msgpack, CBOR, protobuf Struct)
//     used for the basic body and as size baselines.
//
// Wire layout:
//
//	magic "CTXB" (4) | version string | metadata flag (1)
//	  [timestamp f64 | level (1)]     -- when the flag is set
//	frame-type code (1) | body        -- body layout depends on the level
//	[checksum u32]                    -- unless skipped at encode time
//
// Three body strategies trade simplicity against wire size: basic (one
// JSON string), standard (per-role dictionary codes + tagged values), and
// aggressive (common-role bitmap + dictionary-first strings; roles outside
// the 16 common ones are dropped).
//
// The codec is a pure, synchronous transform with no shared mutable state;
// concurrent Serialize/Deserialize calls on independent inputs need no
// locking.
package framewire
