package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Structpb serializes a JSON-shaped map through the protobuf Struct
// well-known type. It gives a protobuf size baseline for dynamic role maps
// without requiring generated message types.
type Structpb struct{}

var _ Codec[map[string]any] = Structpb{}

func (Structpb) Encode(m map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (Structpb) Decode(b []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}
