package lispy

import "testing"

func tokenTexts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out
}

func TestLexBasicForm(t *testing.T) {
	toks, err := Lex(`(+ 1 2.5 "hi")`)
	if err != nil {
		t.Fatal(err)
	}
	got := tokenTexts(toks)
	want := []string{"(", "+", "1", "2.5", `"hi"`, ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLexLineComment(t *testing.T) {
	toks, err := Lex("(a ;; comment\n b)")
	if err != nil {
		t.Fatal(err)
	}
	got := tokenTexts(toks)
	want := []string{"(", "a", "b", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex(`"abc`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

func TestLexEscapedQuoteInsideString(t *testing.T) {
	toks, err := Lex(`"a\"b"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Text != `"a\"b"` {
		t.Fatalf("got %v", toks)
	}
}

func TestLexQuoteIsAlwaysItsOwnToken(t *testing.T) {
	// The lexer emits ' as a standalone one-character token even when it
	// immediately precedes an atom (spec.md §4.A rule 5); it is the
	// reader's job (reader.go) to recombine "'" + the following form into
	// (quote form).
	toks, err := Lex("'foo ' bar")
	if err != nil {
		t.Fatal(err)
	}
	got := tokenTexts(toks)
	want := []string{"'", "foo", "'", "bar"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
