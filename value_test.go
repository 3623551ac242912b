package lispy

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, true},
		{Undefined, true},
		{Number(0), true},
		{String(""), true},
		{List(nil), true},
		{False, false},
		{True, true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%s) = %v, want %v", ToDebugString(c.v), got, c.want)
		}
	}
}

func TestDictCallMemberBuiltinOps(t *testing.T) {
	d := NewDict()
	got := d.CallMember("set", []Value{String("x"), Number(1)})
	if got.AsNumber() != 1 {
		t.Fatalf("set returned %v", got)
	}
	got = d.CallMember("get", []Value{String("x")})
	if got.AsNumber() != 1 {
		t.Fatalf("get returned %v", got)
	}
	if !d.CallMember("key?", []Value{String("x")}).AsBool() {
		t.Fatal("key? should be true")
	}
	if d.CallMember("get", []Value{String("missing")}) != Undefined {
		t.Fatal("get of missing key should be Undefined")
	}
}

func TestDictCallMemberDelegatesToStoredProcedure(t *testing.T) {
	d := NewDict()
	d.Set("greet", ProcedureValue(&Procedure{
		Name: "greet",
		Handler: func(args []Value) Value {
			return String("hello " + args[0].AsString())
		},
	}))
	got := d.CallMember("greet", []Value{String("world")})
	if got.AsString() != "hello world" {
		t.Fatalf("got %q", got.AsString())
	}
}
