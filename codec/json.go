package codec

import "encoding/json"

// JSON round-trips values through encoding/json. This is the reference
// encoding the binary levels are measured against, and the body format of
// the basic compression level.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
