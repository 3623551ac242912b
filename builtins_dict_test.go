package lispy

import "testing"

func TestDictProcedures(t *testing.T) {
	src := `(begin (define d (dict:new "a" 1 "b" 2)) (dict:get d "a"))`
	if got := eval(t, src); got.AsNumber() != 1 {
		t.Fatalf("got %v", got)
	}

	src2 := `(begin (define d (dict:new)) (dict:set d "k" 5) (dict:key? d "k"))`
	if got := eval(t, src2); got != True {
		t.Fatalf("got %v", got)
	}

	src3 := `(begin (define d (dict:new "x" 1)) (length (dict:keys d)))`
	if got := eval(t, src3); got.AsNumber() != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestDictNewRequiresEvenArgs(t *testing.T) {
	evalErr(t, `(dict:new "a")`)
}

func TestDictUpdateRequiresExistingKey(t *testing.T) {
	evalErr(t, `(begin (define d (dict:new)) (dict:update d "missing" 1))`)
}
