package framewire

import (
	"sort"
	"time"

	"github.com/unkn0wn-root/framewire/codec"
	"github.com/unkn0wn-root/framewire/frame"
	"github.com/unkn0wn-root/framewire/internal/dict"
	"github.com/unkn0wn-root/framewire/internal/wire"
)

// frameNative is the JSON shape of the whole frame: the roles plus a
// "frameType" member. Its encoded size is the baseline the compression
// ratio is computed against.
func frameNative(f frame.Frame) map[string]any {
	m := f.Native()
	m["frameType"] = f.Type.String()
	return m
}

// Serialize encodes f into a CTXB buffer. It does not fail for well-formed
// frames; any internal encode failure (e.g. a non-serializable number in
// basic mode) comes back as a single *SerializeError.
func (c *Codec) Serialize(f frame.Frame, opts SerializeOptions) (*SerializationResult, error) {
	now := time.Now()

	origJSON, err := codec.JSON[map[string]any]{}.Encode(frameNative(f))
	if err != nil {
		return nil, &SerializeError{Cause: err}
	}

	w := wire.NewWriter()
	w.PutBytes(magic[:])
	w.PutString(Version)

	if opts.OmitMetadata {
		w.PutByte(0)
	} else {
		w.PutByte(1)
		w.PutTimestamp(now)
		w.PutByte(levelCode(opts.Level))
	}

	w.PutByte(dict.TypeCode(f.Type))

	switch opts.Level {
	case LevelBasic:
		if err := encodeBasicBody(w, f); err != nil {
			return nil, &SerializeError{Cause: err}
		}
	case LevelAggressive:
		c.encodeAggressiveBody(w, f)
	default:
		encodeStandardBody(w, f)
	}

	if !opts.SkipChecksum {
		sum := wire.Checksum(w.Bytes())
		w.PutUint32(sum)
	}

	data := w.Bytes()
	ratio := 0.0
	if len(origJSON) > 0 {
		ratio = float64(len(origJSON)-len(data)) / float64(len(origJSON))
	}

	c.log.Debug("frame serialized", Fields{
		"frame_type":      f.Type.String(),
		"level":           opts.Level.String(),
		"original_size":   len(origJSON),
		"compressed_size": len(data),
		"ratio":           ratio,
	})
	c.hooks.FrameSerialized(f.Type.String(), opts.Level, len(origJSON), len(data))

	return &SerializationResult{
		Data:             data,
		OriginalSize:     len(origJSON),
		CompressedSize:   len(data),
		CompressionRatio: ratio,
		Metadata: SerializeMetadata{
			Version:   Version,
			FrameType: f.Type,
			Timestamp: now,
			Level:     opts.Level,
		},
	}, nil
}

// basic body: one length-prefixed string holding the JSON form of the
// roles (the frame with frameType removed).
func encodeBasicBody(w *wire.Writer, f frame.Frame) error {
	b, err := codec.JSON[map[string]any]{}.Encode(f.Native())
	if err != nil {
		return err
	}
	w.PutString(string(b))
	return nil
}

// standard body: varint role count, then per role a dictionary flag, the
// code or length-prefixed name, and the tagged value. Roles are written in
// sorted order so output is deterministic.
func encodeStandardBody(w *wire.Writer, f frame.Frame) {
	w.PutVarint(uint64(len(f.Roles)))
	for _, name := range sortedRoles(f.Roles) {
		if code, ok := dict.RoleCode(name); ok {
			w.PutByte(1)
			w.PutByte(code)
		} else {
			w.PutByte(0)
			w.PutString(name)
		}
		encodeValue(w, f.Roles[name])
	}
}

// aggressive body: a varint bitmap of present common roles, then each
// present role's value in ascending bit order. Roles without a dictionary
// code cannot be represented and are dropped — a deliberate lossy trade,
// surfaced via the RoleDropped hook.
func (c *Codec) encodeAggressiveBody(w *wire.Writer, f frame.Frame) {
	var bitmap uint64
	for name := range f.Roles {
		code, ok := dict.RoleCode(name)
		if !ok {
			c.log.Warn("aggressive level dropped role", Fields{
				"frame_type": f.Type.String(),
				"role":       name,
			})
			c.hooks.RoleDropped(f.Type.String(), name)
			continue
		}
		bitmap |= 1 << (code - dict.RoleBase)
	}
	w.PutVarint(bitmap)

	for i := 0; i < dict.NumCommonRoles; i++ {
		if bitmap&(1<<i) == 0 {
			continue
		}
		name := dict.RoleName(dict.RoleBase + byte(i))
		encodeAggressiveValue(w, f.Roles[name])
	}
}

func sortedRoles(roles map[string]frame.Value) []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
