package lispy

import "testing"

func TestListPrimitives(t *testing.T) {
	if got := eval(t, "(car (list 1 2 3))"); got.AsNumber() != 1 {
		t.Fatalf("car: got %v", got)
	}
	if got := eval(t, "(length (cdr (list 1 2 3)))"); got.AsNumber() != 2 {
		t.Fatalf("cdr/length: got %v", got)
	}
	if got := eval(t, "(length (cons 0 (list 1 2)))"); got.AsNumber() != 3 {
		t.Fatalf("cons: got %v", got)
	}
	if got := eval(t, "(length (concat (list 1 2) (list 3) (list)))"); got.AsNumber() != 3 {
		t.Fatalf("concat: got %v", got)
	}
	if got := eval(t, `(length "hello")`); got.AsNumber() != 5 {
		t.Fatalf("string length: got %v", got)
	}
	if got := eval(t, "(index (list 10 20 30) 1)"); got.AsNumber() != 20 {
		t.Fatalf("index: got %v", got)
	}
	if got := eval(t, "(index (list 10 20 30) 99)"); got != Undefined {
		t.Fatalf("out-of-range index should be Undefined, got %v", got)
	}
	if got := eval(t, "(last (list 1 2 3))"); got.AsNumber() != 3 {
		t.Fatalf("last: got %v", got)
	}
	if got := eval(t, "(length (slice (list 1 2 3 4 5) 1 3))"); got.AsNumber() != 2 {
		t.Fatalf("slice: got %v", got)
	}
}

func TestListEmptyCarRaises(t *testing.T) {
	evalErr(t, "(car (list))")
}

func TestMapEachReduce(t *testing.T) {
	src := `(map (list 1 2 3) (lambda (x) (* x x)))`
	got := eval(t, src)
	list := got.AsList()
	if len(list) != 3 || list[2].AsNumber() != 9 {
		t.Fatalf("map: got %v", got)
	}

	sumSrc := `(reduce (list 1 2 3 4) (lambda (acc x) (+ acc x)))`
	if got := eval(t, sumSrc); got.AsNumber() != 10 {
		t.Fatalf("reduce: got %v", got)
	}

	seededSrc := `(reduce (list 1 2 3) (lambda (acc x) (+ acc x)) 100)`
	if got := eval(t, seededSrc); got.AsNumber() != 106 {
		t.Fatalf("reduce with seed: got %v", got)
	}
}

func TestReduceEmptyWithoutSeedRaises(t *testing.T) {
	evalErr(t, "(reduce (list) (lambda (acc x) acc))")
}
