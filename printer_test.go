package lispy

import "testing"

func TestToDisplayStringUnquoted(t *testing.T) {
	if got := ToDisplayString(String("hi")); got != "hi" {
		t.Fatalf("got %q", got)
	}
	if got := ToDisplayString(Nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestToDebugStringQuoted(t *testing.T) {
	if got := ToDebugString(String("hi")); got != `"hi"` {
		t.Fatalf("got %q", got)
	}
	if got := ToDebugString(Nil); got != "nil" {
		t.Fatalf("got %q", got)
	}
	if got := ToDebugString(Symbol("foo")); got != "'foo" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatNumberNoTrailingZero(t *testing.T) {
	if got := ToDisplayString(Number(3)); got != "3" {
		t.Fatalf("got %q", got)
	}
	if got := ToDisplayString(Number(3.5)); got != "3.5" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderListAndDict(t *testing.T) {
	v := List([]Value{Number(1), Number(2)})
	if got := ToDisplayString(v); got != "[1 2]" {
		t.Fatalf("got %q", got)
	}

	d := NewDict()
	d.Set("a", Number(1))
	if got := ToDisplayString(DictValue(d)); got != "{a: 1}" {
		t.Fatalf("got %q", got)
	}
}
