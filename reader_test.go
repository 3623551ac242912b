package lispy

import "testing"

func TestParseSimpleList(t *testing.T) {
	v, err := Parse("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	list := v.AsList()
	if len(list) != 3 {
		t.Fatalf("got %d items", len(list))
	}
	if list[0].AsSymbol() != "+" {
		t.Fatalf("head = %v", list[0])
	}
	if list[1].AsNumber() != 1 || list[2].AsNumber() != 2 {
		t.Fatalf("args = %v %v", list[1], list[2])
	}
}

func TestParseListSugar(t *testing.T) {
	v, err := Parse("[1 2 3]")
	if err != nil {
		t.Fatal(err)
	}
	list := v.AsList()
	if list[0].AsSymbol() != "list" {
		t.Fatalf("head = %v", list[0])
	}
	if len(list) != 4 {
		t.Fatalf("got %d items", len(list))
	}
}

func TestParseTupleSugar(t *testing.T) {
	v, err := Parse("{1 2}")
	if err != nil {
		t.Fatal(err)
	}
	list := v.AsList()
	if list[0].AsSymbol() != "tuple" {
		t.Fatalf("head = %v", list[0])
	}
}

func TestParseQuote(t *testing.T) {
	v, err := Parse("'foo")
	if err != nil {
		t.Fatal(err)
	}
	list := v.AsList()
	if len(list) != 2 || list[0].AsSymbol() != "quote" || list[1].AsSymbol() != "foo" {
		t.Fatalf("got %v", v)
	}
}

func TestParseString(t *testing.T) {
	v, err := Parse(`"a\nb"`)
	if err != nil {
		t.Fatal(err)
	}
	if v.AsString() != "a\nb" {
		t.Fatalf("got %q", v.AsString())
	}
}

func TestParseMissingCloser(t *testing.T) {
	_, err := Parse("(+ 1 2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseEmptyProgramIsError(t *testing.T) {
	_, err := Parse("   ;; only a comment\n")
	if err == nil {
		t.Fatal("expected a ParseError for an empty program")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseNegativeNumberVsSubtraction(t *testing.T) {
	v, err := Parse("(- 1 -2)")
	if err != nil {
		t.Fatal(err)
	}
	list := v.AsList()
	if list[2].Tag != TagNumber || list[2].AsNumber() != -2 {
		t.Fatalf("got %v", list[2])
	}
}
