package framewire

import "time"

// Hooks are lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking; the codec calls them
// inline on every operation. Wrap with hooks/async to decouple a slow sink.
type Hooks interface {
	// A frame was encoded. Sizes are bytes: originalSize is the JSON
	// baseline, compressedSize the binary output.
	FrameSerialized(frameType string, level Level, originalSize, compressedSize int)

	// A frame was decoded.
	FrameDeserialized(frameType string, elapsed time.Duration)

	// Stored checksum != recomputed checksum. The decode still returned a
	// best-effort frame with IntegrityOK=false.
	IntegrityMismatch(stored, computed uint32)

	// The buffer carried a version string other than Version. Decoding
	// proceeded anyway.
	VersionSkew(got string)

	// The aggressive level dropped a role with no dictionary code.
	RoleDropped(frameType, role string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) FrameSerialized(string, Level, int, int) {}
func (NopHooks) FrameDeserialized(string, time.Duration) {}
func (NopHooks) IntegrityMismatch(uint32, uint32)        {}
func (NopHooks) VersionSkew(string)                      {}
func (NopHooks) RoleDropped(string, string)              {}
