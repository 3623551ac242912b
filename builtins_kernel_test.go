package lispy

import (
	"strings"
	"testing"
)

func TestKernelDebugToggleDoesNotChangeSemantics(t *testing.T) {
	defer SetDebug(false)

	off := eval(t, "(+ 1 2)")
	SetDebug(true)
	on := eval(t, "(+ 1 2)")
	SetDebug(false)

	if off.AsNumber() != on.AsNumber() {
		t.Fatalf("debug mode changed the result: %v vs %v", off, on)
	}
}

func TestKernelDebugProducesTraceOutput(t *testing.T) {
	var buf strings.Builder
	SetDebugWriter(&buf)
	defer SetDebugWriter(nil)
	defer SetDebug(false)

	ip := NewInterpreter()
	if _, err := ip.EvalPersistentSource("(kernel:debug true)"); err != nil {
		t.Fatal(err)
	}
	if _, err := ip.EvalPersistentSource("(+ 1 2)"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected trace output once kernel:debug is enabled")
	}
}

func TestKernelEnvCountIncreases(t *testing.T) {
	before := EnvCount()
	eval(t, "(env:new)")
	after := EnvCount()
	if after <= before {
		t.Fatalf("expected EnvCount to increase, before=%d after=%d", before, after)
	}
}
