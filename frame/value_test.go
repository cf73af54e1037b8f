package frame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromNativeValue(t *testing.T) {
	cases := []struct {
		in   any
		want Value
	}{
		{nil, Null{}},
		{"hello", String("hello")},
		{3.5, Number(3.5)},
		{42, Number(42)},
		{int64(7), Number(7)},
		{uint32(9), Number(9)},
		{true, Bool(true)},
		{[]any{"a", 1.0, false}, Array{String("a"), Number(1), Bool(false)}},
		{
			map[string]any{"k": "v", "n": map[string]any{"x": nil}},
			Object{"k": String("v"), "n": Object{"x": Null{}}},
		},
	}
	for _, tc := range cases {
		got, err := FromNativeValue(tc.in)
		if err != nil {
			t.Fatalf("FromNativeValue(%v): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("FromNativeValue(%v) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestFromNativeValueRejectsForeignTypes(t *testing.T) {
	if _, err := FromNativeValue(struct{ X int }{1}); err == nil {
		t.Fatalf("expected error for struct value")
	}
	if _, err := FromNativeValue([]any{make(chan int)}); err == nil {
		t.Fatalf("expected error to surface from nested element")
	}
}

func TestNativeRoundTrip(t *testing.T) {
	f := Frame{
		Type: TypeEvent,
		Roles: map[string]Value{
			"agent":  String("agent_user"),
			"count":  Number(3),
			"flags":  Array{Bool(true), Null{}},
			"detail": Object{"deep": Array{Number(1.5)}},
		},
	}
	back, err := FromNative(f.Type, f.Native())
	if err != nil {
		t.Fatalf("FromNative: %v", err)
	}
	if diff := cmp.Diff(f, back); diff != "" {
		t.Fatalf("native round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeNames(t *testing.T) {
	if TypeQuery.String() != "query" || TypeSequence.String() != "sequence" {
		t.Fatalf("unexpected type names: %q %q", TypeQuery, TypeSequence)
	}
	if Type(200).String() != "unknown" {
		t.Fatalf("out-of-range type must read as unknown")
	}
}
