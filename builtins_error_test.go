package lispy

import "testing"

// TestErrorCustomBuildsWithoutRaising exercises spec.md §8 scenario 6:
// error:custom only constructs the Error value; error is what raises it.
func TestErrorCustomBuildsWithoutRaising(t *testing.T) {
	src := `(error? (error:custom 'Oops "x"))`
	if got := eval(t, src); got != True {
		t.Fatalf("error:custom should return an Error value, not raise, got %v", got)
	}
}

func TestErrorNameIsUserSuppliedTag(t *testing.T) {
	src := `(try (error (error:custom 'Oops "x")) (lambda (e) (error:name e)))`
	if got := eval(t, src); got.AsSymbol() != "Oops" {
		t.Fatalf("got %v", got)
	}
}

func TestErrorCustomMessageAndData(t *testing.T) {
	src := `(try (error (error:custom 'balance-too-low "too low" 42)) (lambda (e) (list (error:message e) (error:data e))))`
	got := eval(t, src)
	list := got.AsList()
	if list[0].AsString() != "too low" {
		t.Fatalf("got %v", list[0])
	}
	if list[1].AsNumber() != 42 {
		t.Fatalf("got %v", list[1])
	}
}

func TestErrorPredicate(t *testing.T) {
	src := `(try (error (error:custom 'boom)) (lambda (e) (error? e)))`
	if got := eval(t, src); got != True {
		t.Fatalf("got %v", got)
	}
}

func TestRaisedKeyNotFoundIsCatchable(t *testing.T) {
	src := `(try unbound-name (lambda (e) (error:name e)))`
	if got := eval(t, src); got.AsSymbol() != string(ErrKeyNotFound) {
		t.Fatalf("got %v", got)
	}
}
