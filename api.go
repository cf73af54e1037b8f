package framewire

import (
	"time"

	"github.com/unkn0wn-root/framewire/frame"
)

// Version is the wire-format version string written into every buffer.
// Decoding tolerates other versions with a warning.
const Version = "1.0"

var magic = [4]byte{'C', 'T', 'X', 'B'}

// Level selects the body encoding strategy. The zero value is
// LevelStandard.
type Level uint8

const (
	LevelStandard Level = iota
	LevelBasic
	LevelAggressive
)

func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelAggressive:
		return "aggressive"
	default:
		return "standard"
	}
}

// Wire codes for the metadata level byte.
const (
	levelCodeBasic      byte = 0x01
	levelCodeStandard   byte = 0x02
	levelCodeAggressive byte = 0x03
)

func levelCode(l Level) byte {
	switch l {
	case LevelBasic:
		return levelCodeBasic
	case LevelAggressive:
		return levelCodeAggressive
	default:
		return levelCodeStandard
	}
}

func levelByCode(c byte) (Level, bool) {
	switch c {
	case levelCodeBasic:
		return LevelBasic, true
	case levelCodeStandard:
		return LevelStandard, true
	case levelCodeAggressive:
		return LevelAggressive, true
	default:
		return LevelStandard, false
	}
}

// Options tune a Codec. The zero value is usable: no logging, no hooks,
// no input size cap, default depth cap.
type Options struct {
	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	// MaxDecode rejects Deserialize inputs larger than this many bytes
	// before any parsing. 0 => unlimited.
	MaxDecode int
	// MaxDepth caps value-tree nesting on decode. 0 => 64.
	MaxDepth int
}

// SerializeOptions are per-call encode options. The zero value matches the
// defaults: standard level, metadata included, checksum included.
type SerializeOptions struct {
	Level Level

	// OmitMetadata drops the timestamp/level block. Buffers without
	// metadata are decoded assuming LevelStandard, so only combine this
	// with the default level.
	OmitMetadata bool

	// SkipChecksum drops the trailing integrity word.
	SkipChecksum bool

	// OptimizeForSpeed is reserved; it currently changes nothing.
	OptimizeForSpeed bool
}

// SerializationResult carries the encoded bytes and size accounting.
// OriginalSize is the JSON size of the full frame; CompressionRatio is
// (original-compressed)/original and may be negative for tiny frames.
type SerializationResult struct {
	Data             []byte
	OriginalSize     int
	CompressedSize   int
	CompressionRatio float64
	Metadata         SerializeMetadata
}

type SerializeMetadata struct {
	Version   string
	FrameType frame.Type
	Timestamp time.Time
	Level     Level
}

// DeserializationResult carries the decoded frame and decode metadata.
// IntegrityOK is false when a stored checksum did not match; the frame is
// still the decoder's best effort.
type DeserializationResult struct {
	Frame    frame.Frame
	Metadata DeserializeMetadata
}

type DeserializeMetadata struct {
	Version     string
	FrameType   frame.Type
	Elapsed     time.Duration
	IntegrityOK bool
}

// Codec is the serialization engine. It holds no per-call state; a single
// Codec may be shared freely across goroutines.
type Codec struct {
	log      Logger
	hooks    Hooks
	maxBytes int
	maxDepth int
}

const defaultMaxDepth = 64

func New(opts Options) *Codec {
	c := &Codec{
		log:      opts.Logger,
		hooks:    opts.Hooks,
		maxBytes: opts.MaxDecode,
		maxDepth: coalesce(opts.MaxDepth, defaultMaxDepth),
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}
	return c
}

var defaultCodec = New(Options{})

// Serialize encodes f with a default Codec (no logging, no hooks).
func Serialize(f frame.Frame, opts SerializeOptions) (*SerializationResult, error) {
	return defaultCodec.Serialize(f, opts)
}

// Deserialize decodes data with a default Codec (no logging, no hooks).
func Deserialize(data []byte) (*DeserializationResult, error) {
	return defaultCodec.Deserialize(data)
}
