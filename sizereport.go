package framewire

import (
	"github.com/unkn0wn-root/framewire/codec"
	"github.com/unkn0wn-root/framewire/frame"
)

// SizeSample is one encoding's output size for a frame.
type SizeSample struct {
	Encoding string
	Size     int
}

// SizeReport encodes f under every supported encoding — the textual and
// schemaless-binary baselines plus the three CTXB levels — and returns the
// resulting sizes, JSON first. It is a diagnostic surface: use it to verify
// the reduction target for a workload's typical frames, or to pick a level.
//
// Note the aggressive sample drops roles outside the common set, so its
// size is only comparable when the frame uses common roles throughout.
func SizeReport(f frame.Frame) ([]SizeSample, error) {
	native := frameNative(f)
	samples := make([]SizeSample, 0, 7)

	jb, err := codec.JSON[map[string]any]{}.Encode(native)
	if err != nil {
		return nil, err
	}
	samples = append(samples, SizeSample{Encoding: "json", Size: len(jb)})

	mb, err := codec.Msgpack[map[string]any]{}.Encode(native)
	if err != nil {
		return nil, err
	}
	samples = append(samples, SizeSample{Encoding: "msgpack", Size: len(mb)})

	cc, err := codec.NewCBOR[map[string]any](false)
	if err != nil {
		return nil, err
	}
	cb, err := cc.Encode(native)
	if err != nil {
		return nil, err
	}
	samples = append(samples, SizeSample{Encoding: "cbor", Size: len(cb)})

	pb, err := codec.Structpb{}.Encode(native)
	if err != nil {
		return nil, err
	}
	samples = append(samples, SizeSample{Encoding: "protobuf", Size: len(pb)})

	for _, lvl := range []Level{LevelBasic, LevelStandard, LevelAggressive} {
		res, err := Serialize(f, SerializeOptions{Level: lvl})
		if err != nil {
			return nil, err
		}
		samples = append(samples, SizeSample{
			Encoding: "ctxb-" + lvl.String(),
			Size:     len(res.Data),
		})
	}
	return samples, nil
}
