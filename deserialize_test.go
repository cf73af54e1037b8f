package framewire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/framewire/frame"
)

func TestTruncationAlwaysRejected(t *testing.T) {
	for _, lvl := range []Level{LevelBasic, LevelStandard} {
		res := mustSerialize(t, rtFrames[3], SerializeOptions{Level: lvl})
		full := res.Data
		for l := 0; l < len(full); l++ {
			if l == len(full)-4 {
				// indistinguishable from a buffer encoded without a
				// checksum; the body itself is complete here
				continue
			}
			_, err := Deserialize(full[:l])
			if err == nil {
				t.Fatalf("%v: truncation to %d bytes decoded", lvl, l)
			}
			if l >= 4 && !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("%v: truncation to %d bytes: got %v want ErrShortBuffer", lvl, l, err)
			}
		}
	}
}

func TestChecksumSensitivity(t *testing.T) {
	f := frame.Frame{
		Type: frame.TypeQuery,
		Roles: map[string]frame.Value{
			"action": frame.String("action_get"),
			"agent":  frame.String("agent_user"),
		},
	}
	rec := &recorder{}
	c := New(Options{Hooks: rec})
	res, err := c.Serialize(f, SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	// flip a bit in the last body byte (a dictionary code, so the buffer
	// still parses), just before the trailing checksum word
	bad := append([]byte(nil), res.Data...)
	bad[len(bad)-5] ^= 0x01

	got, err := c.Deserialize(bad)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.Metadata.IntegrityOK {
		t.Fatalf("flipped bit not detected")
	}
	if rec.mismatches != 1 {
		t.Fatalf("IntegrityMismatch hook fired %d times", rec.mismatches)
	}
	// best-effort frame: untouched roles survive
	if v, ok := got.Frame.Roles["action"]; !ok || v != frame.String("action_get") {
		t.Fatalf("unaffected role corrupted: %v", got.Frame.Roles)
	}
	if len(got.Frame.Roles) != 2 {
		t.Fatalf("role count: %d", len(got.Frame.Roles))
	}
}

func TestVersionSkewWarnsAndProceeds(t *testing.T) {
	res := mustSerialize(t, rtFrames[1], SerializeOptions{SkipChecksum: true})
	// version string sits right after the magic: varint length, then "1.0"
	bad := append([]byte(nil), res.Data...)
	bad[5] = '2'

	rec := &recorder{}
	c := New(Options{Hooks: rec})
	got, err := c.Deserialize(bad)
	if err != nil {
		t.Fatalf("version skew must not fail decode: %v", err)
	}
	if got.Metadata.Version != "2.0" {
		t.Fatalf("version: %q", got.Metadata.Version)
	}
	if len(rec.skews) != 1 || rec.skews[0] != "2.0" {
		t.Fatalf("VersionSkew hook: %v", rec.skews)
	}
	if diff := cmp.Diff(rtFrames[1].Roles, got.Frame.Roles); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownFrameTypeFatal(t *testing.T) {
	res := mustSerialize(t, rtFrames[1], SerializeOptions{OmitMetadata: true, SkipChecksum: true})
	bad := append([]byte(nil), res.Data...)
	bad[9] = 0xEE

	_, err := Deserialize(bad)
	var ute *UnknownFrameTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("got %v want UnknownFrameTypeError", err)
	}
	if ute.Code != 0xEE {
		t.Fatalf("code: 0x%02X", ute.Code)
	}
}

func TestUnknownLevelCodeFallsBackToStandard(t *testing.T) {
	res := mustSerialize(t, rtFrames[1], SerializeOptions{})
	// level byte offset: magic(4) + version(4) + flag(1) + timestamp(8)
	bad := append([]byte(nil), res.Data...)
	bad[17] = 0x7E

	got, err := Deserialize(bad)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	// the patched byte invalidates the checksum but not the frame
	if got.Metadata.IntegrityOK {
		t.Fatalf("expected integrity mismatch after patching")
	}
	if diff := cmp.Diff(rtFrames[1].Roles, got.Frame.Roles); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestTrailingBytesTolerated(t *testing.T) {
	res := mustSerialize(t, rtFrames[1], SerializeOptions{SkipChecksum: true})

	junk := append(append([]byte(nil), res.Data...), 0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01)
	got, err := Deserialize(junk)
	if err != nil {
		t.Fatalf("six trailing bytes must be ignored: %v", err)
	}
	if !got.Metadata.IntegrityOK {
		t.Fatalf("no checksum was read, integrity must stay true")
	}

	// exactly four trailing bytes read as a (wrong) checksum
	fourJunk := append(append([]byte(nil), res.Data...), 1, 2, 3, 4)
	got, err = Deserialize(fourJunk)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.Metadata.IntegrityOK {
		t.Fatalf("bogus trailing word must flag integrity")
	}
}

func TestMaxDecodeLimit(t *testing.T) {
	res := mustSerialize(t, rtFrames[1], SerializeOptions{})
	c := New(Options{MaxDecode: 8})
	if _, err := c.Deserialize(res.Data); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v want ErrTooLarge", err)
	}
	roomy := New(Options{MaxDecode: len(res.Data)})
	if _, err := roomy.Deserialize(res.Data); err != nil {
		t.Fatalf("limit at exact size must pass: %v", err)
	}
}

func TestMaxDepthLimit(t *testing.T) {
	v := frame.Value(frame.Number(1))
	for i := 0; i < 80; i++ {
		v = frame.Array{v}
	}
	f := frame.Frame{Type: frame.TypeList, Roles: map[string]frame.Value{"value": v}}

	res := mustSerialize(t, f, SerializeOptions{})
	if _, err := Deserialize(res.Data); !errors.Is(err, ErrTooDeep) {
		t.Fatalf("default depth cap: got %v want ErrTooDeep", err)
	}

	deep := New(Options{MaxDepth: 128})
	got, err := deep.Deserialize(res.Data)
	if err != nil {
		t.Fatalf("raised depth cap: %v", err)
	}
	if got.Frame.Type != frame.TypeList {
		t.Fatalf("type: %v", got.Frame.Type)
	}
}

func TestHookCounts(t *testing.T) {
	rec := &recorder{}
	c := New(Options{Hooks: rec})
	res, err := c.Serialize(rtFrames[1], SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if _, err := c.Deserialize(res.Data); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if rec.serialized != 1 || rec.deserialized != 1 {
		t.Fatalf("hook counts: serialized=%d deserialized=%d", rec.serialized, rec.deserialized)
	}
}
