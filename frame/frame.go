// Package frame defines the semantic frame model: a typed record of named
// roles, each holding a recursive Value. Frames are transient message units;
// producers build them, the codec serializes them, consumers discard them.
package frame

// Type identifies the shape of a frame. The set is closed: the wire format
// assigns each variant a one-byte code and rejects anything outside it.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeQuery
	TypeAnswer
	TypeEvent
	TypeState
	TypeEntity
	TypeList
	TypeError
	TypeControl
	TypeConditional
	TypeLoop
	TypeSequence
)

var typeNames = map[Type]string{
	TypeQuery:       "query",
	TypeAnswer:      "answer",
	TypeEvent:       "event",
	TypeState:       "state",
	TypeEntity:      "entity",
	TypeList:        "list",
	TypeError:       "error",
	TypeControl:     "control",
	TypeConditional: "conditional",
	TypeLoop:        "loop",
	TypeSequence:    "sequence",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Frame is a tagged role/value record. Roles may be nil for a frame that
// carries only its type.
type Frame struct {
	Type  Type
	Roles map[string]Value
}

// Role returns the value bound to name.
func (f Frame) Role(name string) (Value, bool) {
	v, ok := f.Roles[name]
	return v, ok
}

// Native returns the roles as plain Go values (string, float64, bool,
// []any, map[string]any, nil) — the JSON shape of the frame body.
func (f Frame) Native() map[string]any {
	out := make(map[string]any, len(f.Roles))
	for k, v := range f.Roles {
		out[k] = ToNative(v)
	}
	return out
}

// FromNative builds a frame of type t from a JSON-shaped role map.
func FromNative(t Type, roles map[string]any) (Frame, error) {
	f := Frame{Type: t, Roles: make(map[string]Value, len(roles))}
	for k, v := range roles {
		val, err := FromNativeValue(v)
		if err != nil {
			return Frame{}, err
		}
		f.Roles[k] = val
	}
	return f, nil
}
