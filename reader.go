// reader.go — token stream → expression tree (spec.md §4.B, component B).
//
// The reader is a small recursive-descent parser over the Token slice
// produced by lexer.go. Its algorithm (not its surface grammar — Lispy is
// s-expression syntax, not MindScript's infix grammar) is grounded on
// `bshepherdson-mal`'s reader.go, which parses parenthesized forms the same
// token-at-a-time way; error shapes (*ParseError{Line,Col,Msg}) follow the
// teacher's *ParseError convention (parser.go) so errors.go's caret
// rendering handles both lexer and reader failures identically.
package lispy

import (
	"strconv"
	"strings"
)

// Parse tokenizes and reads src into a single expression tree Value. Per
// spec.md §9's Open Question, an empty program (only whitespace/comments)
// is a ParserError at read time rather than silently yielding Nil.
func Parse(src string) (Value, error) {
	tokens, err := Lex(src)
	if err != nil {
		return Nil, err
	}
	if len(tokens) == 0 {
		return Nil, &ParseError{Pos: SourcePos{Line: 1, Col: 1}, Msg: "empty program: expected a form"}
	}
	r := &reader{tokens: tokens}
	v, err := r.readForm()
	if err != nil {
		return Nil, err
	}
	return v, nil
}

type reader struct {
	tokens []Token
	pos    int
}

func (r *reader) eof() bool { return r.pos >= len(r.tokens) }

func (r *reader) peek() Token { return r.tokens[r.pos] }

func (r *reader) next() Token {
	t := r.tokens[r.pos]
	r.pos++
	return t
}

func (r *reader) here() SourcePos {
	if r.eof() {
		if len(r.tokens) == 0 {
			return SourcePos{Line: 1, Col: 1}
		}
		return r.tokens[len(r.tokens)-1].Pos
	}
	return r.peek().Pos
}

// readForm reads exactly one form, per spec.md §4.B's grammar.
func (r *reader) readForm() (Value, error) {
	if r.eof() {
		return Nil, &ParseError{Pos: r.here(), Msg: "unexpected end of input, expected a form"}
	}
	tok := r.peek()
	switch tok.Text {
	case "(":
		return r.readSeq("(", ")", nil)
	case "[":
		return r.readSeq("[", "]", &Value{Tag: TagSymbol, Data: "list"})
	case "{":
		return r.readSeq("{", "}", &Value{Tag: TagSymbol, Data: "tuple"})
	case ")", "]", "}":
		return Nil, &ParseError{Pos: tok.Pos, Msg: "unexpected '" + tok.Text + "'"}
	case "'":
		r.next()
		quoted, err := r.readForm()
		if err != nil {
			return Nil, err
		}
		return List([]Value{Symbol("quote"), quoted}), nil
	default:
		return r.readAtomForm(tok)
	}
}

// readSeq reads a parenthesized/bracketed form. head, when non-nil, is
// prepended to the resulting list (the `[...]`/`{...}` sugar from
// spec.md §4.B).
func (r *reader) readSeq(open, close string, head *Value) (Value, error) {
	openTok := r.next() // consume opener
	var items []Value
	if head != nil {
		items = append(items, *head)
	}
	for {
		if r.eof() {
			return Nil, &ParseError{Pos: openTok.Pos, Msg: "missing matching '" + close + "' for '" + open + "' opened here"}
		}
		if r.peek().Text == close {
			r.next()
			return List(items), nil
		}
		if r.peek().Text == ")" || r.peek().Text == "]" || r.peek().Text == "}" {
			return Nil, &ParseError{Pos: r.peek().Pos, Msg: "unexpected '" + r.peek().Text + "', expected '" + close + "'"}
		}
		item, err := r.readForm()
		if err != nil {
			return Nil, err
		}
		items = append(items, item)
	}
}

// readAtomForm classifies a plain (non-punctuation) token: a quoted
// string, a `'`-prefixed atom (`'name`), a number, or a symbol.
func (r *reader) readAtomForm(tok Token) (Value, error) {
	r.next()
	text := tok.Text

	if strings.HasPrefix(text, "'") && len(text) > 1 {
		inner, err := r.readAtomForm(Token{Text: text[1:], Pos: tok.Pos})
		if err != nil {
			return Nil, err
		}
		return List([]Value{Symbol("quote"), inner}), nil
	}

	if strings.HasPrefix(text, "\"") {
		if !strings.HasSuffix(text, "\"") || len(text) < 2 {
			return Nil, &ParseError{Pos: tok.Pos, Msg: "malformed string literal"}
		}
		return String(unescapeString(text[1 : len(text)-1])), nil
	}

	if isNumberToken(text) {
		f, err := parseNumberToken(text)
		if err != nil {
			return Nil, &ParseError{Pos: tok.Pos, Msg: "malformed number literal: " + text}
		}
		return Number(f), nil
	}

	return Symbol(text), nil
}

// isNumberToken reports whether text begins with a digit, or with '-'
// followed by a digit, per spec.md §4.B.
func isNumberToken(text string) bool {
	if text == "" {
		return false
	}
	if isDigit(text[0]) {
		return true
	}
	if text[0] == '-' && len(text) > 1 && isDigit(text[1]) {
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func parseNumberToken(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// unescapeString replaces the fixed backslash-escape set from spec.md
// §4.B; any other `\X` is replaced by `X` (the backslash is dropped).
func unescapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		i++
		switch next {
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(next)
		}
	}
	return b.String()
}
