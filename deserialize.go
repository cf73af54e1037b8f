package framewire

import (
	"bytes"
	"fmt"
	"time"

	"github.com/unkn0wn-root/framewire/codec"
	"github.com/unkn0wn-root/framewire/frame"
	"github.com/unkn0wn-root/framewire/internal/dict"
	"github.com/unkn0wn-root/framewire/internal/wire"
)

// Deserialize decodes a CTXB buffer. Structural failures (bad magic,
// unknown frame type, truncation) abort; a version mismatch or checksum
// mismatch is soft and surfaced through the result metadata.
func (c *Codec) Deserialize(data []byte) (*DeserializationResult, error) {
	start := time.Now()

	if c.maxBytes > 0 && len(data) > c.maxBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(data), c.maxBytes)
	}
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, ErrInvalidHeader
	}

	r := wire.NewReader(data)
	if _, err := r.ReadBytes(len(magic)); err != nil {
		return nil, err
	}

	ver, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if ver != Version {
		c.log.Warn("version mismatch, decoding anyway", Fields{
			"got":  ver,
			"want": Version,
		})
		c.hooks.VersionSkew(ver)
	}

	metaFlag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	// Without metadata the level byte is absent; such buffers are decoded
	// assuming the standard level.
	level := LevelStandard
	if metaFlag != 0 {
		if _, err := r.ReadTimestamp(); err != nil {
			return nil, err
		}
		lc, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		lvl, known := levelByCode(lc)
		if !known {
			c.log.Warn("unknown compression level code, assuming standard", Fields{
				"code": lc,
			})
		}
		level = lvl
	}

	tc, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	ftype, ok := dict.TypeByCode(tc)
	if !ok {
		return nil, &UnknownFrameTypeError{Code: tc}
	}

	var roles map[string]frame.Value
	switch level {
	case LevelBasic:
		roles, err = c.decodeBasicBody(r)
	case LevelAggressive:
		roles, err = c.decodeAggressiveBody(r)
	default:
		roles, err = c.decodeStandardBody(r)
	}
	if err != nil {
		return nil, err
	}

	integrityOK := true
	switch rem := r.Remaining(); {
	case rem == 0:
		// encoded without a checksum
	case rem == 4:
		stored, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		computed := wire.Checksum(data[:len(data)-4])
		if stored != computed {
			integrityOK = false
			c.log.Warn("integrity check failed", Fields{
				"stored":   stored,
				"computed": computed,
			})
			c.hooks.IntegrityMismatch(stored, computed)
		}
	case rem < 4:
		// a partial trailing word means the buffer lost bytes in transit
		return nil, wire.ErrShortBuffer
	default:
		c.log.Warn("ignoring trailing bytes after frame body", Fields{
			"count": rem,
		})
	}

	elapsed := time.Since(start)
	c.log.Debug("frame deserialized", Fields{
		"frame_type": ftype.String(),
		"level":      level.String(),
		"elapsed":    elapsed,
		"integrity":  integrityOK,
	})
	c.hooks.FrameDeserialized(ftype.String(), elapsed)

	return &DeserializationResult{
		Frame: frame.Frame{Type: ftype, Roles: roles},
		Metadata: DeserializeMetadata{
			Version:     ver,
			FrameType:   ftype,
			Elapsed:     elapsed,
			IntegrityOK: integrityOK,
		},
	}, nil
}

func (c *Codec) decodeBasicBody(r *wire.Reader) (map[string]frame.Value, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	native, err := codec.JSON[map[string]any]{}.Decode([]byte(s))
	if err != nil {
		return nil, err
	}
	roles := make(map[string]frame.Value, len(native))
	for k, v := range native {
		val, err := frame.FromNativeValue(v)
		if err != nil {
			return nil, err
		}
		roles[k] = val
	}
	return roles, nil
}

func (c *Codec) decodeStandardBody(r *wire.Reader) (map[string]frame.Value, error) {
	n, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	// flag byte + name/code + value tag: three bytes minimum per role
	if n > uint64(r.Remaining())/3 {
		return nil, wire.ErrShortBuffer
	}
	roles := make(map[string]frame.Value, n)
	for i := uint64(0); i < n; i++ {
		isDict, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		var name string
		if isDict != 0 {
			code, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			name = dict.RoleName(code)
		} else {
			name, err = r.ReadString()
			if err != nil {
				return nil, err
			}
		}
		v, err := c.decodeValue(r, 0)
		if err != nil {
			return nil, err
		}
		roles[name] = v
	}
	return roles, nil
}

func (c *Codec) decodeAggressiveBody(r *wire.Reader) (map[string]frame.Value, error) {
	bitmap, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	roles := make(map[string]frame.Value)
	for i := 0; i < dict.NumCommonRoles; i++ {
		if bitmap&(1<<i) == 0 {
			continue
		}
		name := dict.RoleName(dict.RoleBase + byte(i))
		v, err := c.decodeAggressiveValue(r, 0)
		if err != nil {
			return nil, err
		}
		roles[name] = v
	}
	return roles, nil
}
