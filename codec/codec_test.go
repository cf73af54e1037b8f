package codec

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var payload = map[string]any{
	"action": "action_get",
	"agent":  "agent_user",
	"count":  3.5,
	"ok":     true,
	"nested": map[string]any{"list": []any{"a", 1.0, nil}},
}

func TestCodecsRoundTripJSONShape(t *testing.T) {
	cbor, err := NewCBOR[map[string]any](false)
	if err != nil {
		t.Fatalf("NewCBOR: %v", err)
	}
	codecs := map[string]Codec[map[string]any]{
		"json":     JSON[map[string]any]{},
		"msgpack":  Msgpack[map[string]any]{},
		"cbor":     cbor,
		"structpb": Structpb{},
	}
	for name, c := range codecs {
		b, err := c.Encode(payload)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		got, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if diff := cmp.Diff(payload, got); diff != "" {
			t.Fatalf("%s round trip mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLimitRejectsOversizedDecode(t *testing.T) {
	inner := JSON[map[string]any]{}
	c := Limit[map[string]any]{Inner: inner, MaxDecode: 16}

	small, err := c.Encode(map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := c.Decode(small); err != nil {
		t.Fatalf("small payload rejected: %v", err)
	}

	big, err := inner.Encode(map[string]any{"k": strings.Repeat("x", 100)})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := c.Decode(big); err == nil {
		t.Fatalf("oversized payload accepted")
	}
	// encode path is never limited
	if _, err := c.Encode(map[string]any{"k": strings.Repeat("x", 100)}); err != nil {
		t.Fatalf("encode must not be limited: %v", err)
	}
}
