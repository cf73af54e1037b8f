package frame

import "fmt"

// Value is the recursive payload a role can hold. The set of implementations
// is closed (String, Number, Bool, Array, Object, Null), which keeps every
// encode/decode switch over it total.
type Value interface {
	isValue()
}

type (
	String string
	Number float64
	Bool   bool
	Array  []Value
	Object map[string]Value
	Null   struct{}
)

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Array) isValue()  {}
func (Object) isValue() {}
func (Null) isValue()   {}

// ToNative converts v to the equivalent plain Go value. A nil Value maps
// to nil, same as Null.
func ToNative(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Number:
		return float64(v)
	case Bool:
		return bool(v)
	case Array:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToNative(e)
		}
		return out
	case Object:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = ToNative(e)
		}
		return out
	default:
		return nil
	}
}

// FromNativeValue converts a JSON-shaped Go value into a Value. Integer
// widths are accepted for caller convenience and normalized to Number.
func FromNativeValue(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case string:
		return String(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(v), nil
	case int:
		return Number(v), nil
	case int32:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case uint:
		return Number(v), nil
	case uint32:
		return Number(v), nil
	case uint64:
		return Number(v), nil
	case bool:
		return Bool(v), nil
	case []any:
		out := make(Array, len(v))
		for i, e := range v {
			ev, err := FromNativeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case map[string]any:
		out := make(Object, len(v))
		for k, e := range v {
			ev, err := FromNativeValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	default:
		return nil, fmt.Errorf("frame: unsupported value type %T", v)
	}
}
