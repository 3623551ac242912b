package lispy

import (
	"strings"
	"testing"
)

func TestNewInterpreterHasStandardEnvironment(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.EvalPersistentSource("(+ 1 2)"); err != nil {
		t.Fatal(err)
	}
}

func TestEvalSourceDoesNotLeakDefines(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.EvalSource("(define leaked 1)"); err != nil {
		t.Fatal(err)
	}
	if _, err := ip.EvalSource("leaked"); err == nil {
		t.Fatal("EvalSource should not persist defines across calls")
	}
}

func TestEvalPersistentSourceAccumulates(t *testing.T) {
	ip := NewInterpreter()
	if _, err := ip.EvalPersistentSource("(define kept 1)"); err != nil {
		t.Fatal(err)
	}
	v, err := ip.EvalPersistentSource("kept")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestEvalASTWithExplicitEnvironment(t *testing.T) {
	ip := NewInterpreter()
	scratch := MakeEnvironment(ip.Core)
	scratch.Define("n", Number(41))
	expr, err := Parse("(+ n 1)")
	if err != nil {
		t.Fatal(err)
	}
	v, err := ip.EvalAST(expr, scratch)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 42 {
		t.Fatalf("got %v", v)
	}
}

func TestParseErrorSurfacesWithCaretSnippet(t *testing.T) {
	ip := NewInterpreter()
	_, err := ip.EvalPersistentSource("(+ 1 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "^") {
		t.Fatalf("expected a caret-annotated snippet, got %q", err.Error())
	}
}

// TestDeepTailRecursionDoesNotOverflow exercises spec.md §8's tail-call
// elimination law at the scale it names explicitly: a million-iteration
// tail-recursive loop must return via the trampoline rather than recursing
// into the Go call stack.
func TestDeepTailRecursionDoesNotOverflow(t *testing.T) {
	ip := NewInterpreter()
	src := `
	(begin
	  (define count-to
	    (lambda (n acc) (if (>= acc n) acc (count-to n (+ acc 1)))))
	  (count-to 1000000 0))`
	v, err := ip.EvalPersistentSource(src)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 1000000 {
		t.Fatalf("got %v", v)
	}
}

func TestLexicalCaptureAcrossCalls(t *testing.T) {
	ip := NewInterpreter()
	src := `
	(begin
	  (define make-counter
	    (lambda ()
	      (begin
	        (define n 0)
	        (lambda () (begin (set! n (+ n 1)) n)))))
	  (define c (make-counter))
	  (c) (c) (c))`
	v, err := ip.EvalPersistentSource(src)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 3 {
		t.Fatalf("got %v", v)
	}
}
