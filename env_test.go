package lispy

import "testing"

func mustLispyError(t *testing.T, kind ErrorKind, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s, got none", kind)
		}
		le, ok := r.(*LispyError)
		if !ok {
			t.Fatalf("expected *LispyError, got %T: %v", r, r)
		}
		if ErrorKind(le.Name) != kind {
			t.Fatalf("expected kind %s, got %s", kind, le.Name)
		}
	}()
	f()
}

func TestEnvGetSetWalkParents(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)

	if got := child.Get("x"); got.AsNumber() != 1 {
		t.Fatalf("child.Get(x) = %v", got)
	}

	child.Set("x", Number(2))
	if got := root.Get("x"); got.AsNumber() != 2 {
		t.Fatalf("set! should mutate the ancestor binding, got %v", got)
	}
}

func TestEnvSetNeverCreatesBinding(t *testing.T) {
	e := NewEnv(nil)
	mustLispyError(t, ErrKeyNotFound, func() {
		e.Set("nope", Number(1))
	})
	if e.Present("nope") {
		t.Fatal("set! must not create a new binding")
	}
}

func TestEnvDefineShadows(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Number(1))
	child := NewEnv(root)
	child.Define("x", Number(99))

	if got := child.Get("x"); got.AsNumber() != 99 {
		t.Fatalf("child shadow failed, got %v", got)
	}
	if got := root.Get("x"); got.AsNumber() != 1 {
		t.Fatalf("parent binding should be untouched, got %v", got)
	}
}

func TestEnvCallMemberParentChain(t *testing.T) {
	root := NewEnv(nil)
	child := NewEnv(root)
	if child.CallMember("parent?", nil) != True {
		t.Fatal("child should report a parent")
	}
	if root.CallMember("parent?", nil) != False {
		t.Fatal("root should report no parent")
	}
	tl := child.CallMember("top_level", nil)
	if tl.AsEnv() != root {
		t.Fatal("top_level should reach the root")
	}
}
