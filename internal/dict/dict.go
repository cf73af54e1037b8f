// Package dict holds the closed dictionary tables of the wire format:
// frame-type codes, common-role codes, and primitive-string codes. All three
// are compile-time constant and bidirectional. Encoding lookups report
// whether the entry exists; decoding lookups for roles and primitives never
// fail — an unrecognized code synthesizes a placeholder identifier instead
// of dropping the byte.
package dict

import (
	"fmt"

	"github.com/unkn0wn-root/framewire/frame"
)

// TypeUnmapped is written when a frame's type has no dictionary code.
const TypeUnmapped byte = 0xFF

// Frame-type codes occupy 0x01–0x0B.
var typeCodes = map[frame.Type]byte{
	frame.TypeQuery:       0x01,
	frame.TypeAnswer:      0x02,
	frame.TypeEvent:       0x03,
	frame.TypeState:       0x04,
	frame.TypeEntity:      0x05,
	frame.TypeList:        0x06,
	frame.TypeError:       0x07,
	frame.TypeControl:     0x08,
	frame.TypeConditional: 0x09,
	frame.TypeLoop:        0x0A,
	frame.TypeSequence:    0x0B,
}

var typeByCode = func() map[byte]frame.Type {
	m := make(map[byte]frame.Type, len(typeCodes))
	for t, c := range typeCodes {
		m[c] = t
	}
	return m
}()

// TypeCode returns the wire code for t, or TypeUnmapped when t is not in
// the closed set.
func TypeCode(t frame.Type) byte {
	if c, ok := typeCodes[t]; ok {
		return c
	}
	return TypeUnmapped
}

// TypeByCode resolves a wire code back to a frame type.
func TypeByCode(c byte) (frame.Type, bool) {
	t, ok := typeByCode[c]
	return t, ok
}

// Common-role codes occupy RoleBase..RoleBase+NumCommonRoles-1. The table is
// capped at 16 entries so the aggressive body can address every common role
// with one 16-bit bitmap.
const (
	RoleBase       byte = 0x10
	NumCommonRoles      = 16
)

// commonRoles is ordered; index i gets code RoleBase+i.
var commonRoles = [NumCommonRoles]string{
	"agent",
	"action",
	"object",
	"recipient",
	"instrument",
	"location",
	"time",
	"manner",
	"cause",
	"purpose",
	"quantity",
	"quality",
	"state",
	"value",
	"source",
	"destination",
}

var roleCodes = func() map[string]byte {
	m := make(map[string]byte, NumCommonRoles)
	for i, r := range commonRoles {
		m[r] = RoleBase + byte(i)
	}
	return m
}()

// RoleCode returns the dictionary code for a common role.
func RoleCode(name string) (byte, bool) {
	c, ok := roleCodes[name]
	return c, ok
}

// RoleName resolves a role code. Codes outside the table yield a
// placeholder name rather than an error.
func RoleName(c byte) string {
	if c >= RoleBase && c < RoleBase+NumCommonRoles {
		return commonRoles[c-RoleBase]
	}
	return fmt.Sprintf("unknown_role_%d", c)
}

// Primitive-string codes start at PrimitiveBase. These are the string
// payloads that recur often enough in frame bodies to earn a 1-byte form.
const PrimitiveBase byte = 0x20

var primitives = []string{
	"action_get",
	"action_set",
	"action_create",
	"action_delete",
	"action_update",
	"action_list",
	"agent_user",
	"agent_system",
	"agent_assistant",
	"state_active",
	"state_inactive",
	"state_pending",
	"state_complete",
	"state_error",
	"true",
	"false",
	"null",
	"success",
	"failure",
	"pending",
	"unknown",
	"none",
}

var primCodes = func() map[string]byte {
	m := make(map[string]byte, len(primitives))
	for i, s := range primitives {
		m[s] = PrimitiveBase + byte(i)
	}
	return m
}()

// PrimitiveCode returns the dictionary code for a common string value.
func PrimitiveCode(s string) (byte, bool) {
	c, ok := primCodes[s]
	return c, ok
}

// PrimitiveString resolves a primitive code, synthesizing a placeholder for
// codes outside the table.
func PrimitiveString(c byte) string {
	i := int(c) - int(PrimitiveBase)
	if i >= 0 && i < len(primitives) {
		return primitives[i]
	}
	return fmt.Sprintf("unknown_value_%d", c)
}
