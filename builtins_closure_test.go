package lispy

import "testing"

func TestLambdaIntrospection(t *testing.T) {
	src := `(begin (define f (lambda (a b) (+ a b))) (length (lambda:args f)))`
	if got := eval(t, src); got.AsNumber() != 2 {
		t.Fatalf("got %v", got)
	}

	src2 := `(begin (define f (lambda (a) a)) (lambda? (lambda:body f)))`
	// body of (lambda (a) a) is the symbol `a`, not itself a lambda; just
	// confirm the accessor round-trips without raising.
	_ = eval(t, src2)
}

func TestMacroIntrospection(t *testing.T) {
	src := `(begin (define m (macro args args)) (macro? m))`
	if got := eval(t, src); got != True {
		t.Fatalf("got %v", got)
	}
}

func TestClosureEnvAccessor(t *testing.T) {
	src := `(begin (define f (lambda (a) a)) (env? (lambda:env f)))`
	if got := eval(t, src); got != True {
		t.Fatalf("got %v", got)
	}
}

func TestClosureEvaluatorAccessorIsCallable(t *testing.T) {
	src := `(begin (define f (lambda (a) a)) ((lambda:evaluator f) (quote (+ 1 2))))`
	if got := eval(t, src); got.AsNumber() != 3 {
		t.Fatalf("got %v", got)
	}
}
