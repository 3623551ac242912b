// errors.go — the error taxonomy (spec.md §7) and caret-annotated
// rendering of source-position errors.
//
// Every raised error is a *LispyError carrying a name (one of the fixed
// taxonomy tags, or the user-chosen name given to error:custom) plus a
// message; it satisfies the standard `error` interface so it
// composes with normal Go error handling at the embedding boundary, and it
// is also representable as a Lispy Value (TagError) so `try` handlers and
// the `error:*` builtins can inspect it from inside the language.
//
// Propagation uses panic/recover exactly the way the teacher's
// interpreter_ops.go does with its rtErr/fail()/panicRt() trio: raise()
// panics with a *LispyError, and the only recover() sites are the `try`
// special form (eval.go) and the Interpreter's EvalSource/
// EvalPersistentSource/EvalAST entry points (interpreter.go), which return
// an uncaught error to the host as a Go `error`. A host that calls
// Evaluate directly receives it as a panic value instead; its cause
// carries a Go stack (via github.com/pkg/errors.WithStack).
package lispy

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind is one of the language-neutral tags from spec.md §7.
type ErrorKind string

const (
	ErrParser          ErrorKind = "ParserError"
	ErrKeyNotFound     ErrorKind = "KeyNotFound"
	ErrInvalidArgument ErrorKind = "InvalidArgument"
	ErrInvalidOperation ErrorKind = "InvalidOperation"
	ErrUnexpectedInput ErrorKind = "UnexpectedInput"
	ErrCustom          ErrorKind = "Custom"
)

// LispyError is the payload behind Value{Tag: TagError}. It satisfies the
// Go `error` interface directly, so it can also be returned unwrapped from
// the public API (interpreter.go) after being recovered from a panic.
type LispyError struct {
	Name    string // spec.md §6: a symbol/string tag
	Message string
	Stack   string // never set by this package, and not read by any error:* procedure
	Code    string // optional, set by hosts; unused by error:custom
	Data    Value  // arbitrary payload attached by error:custom's 3rd argument, or Nil
	cause   error  // underlying github.com/pkg/errors-wrapped cause, if any
}

func (e *LispyError) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// Unwrap exposes the stack-carrying cause so callers can use errors.As/Is.
func (e *LispyError) Unwrap() error { return e.cause }

// newLispyError builds a *LispyError for kind, wrapping it with
// github.com/pkg/errors so it carries a stack trace from the raise site.
func newLispyError(kind ErrorKind, message string, data *Value) *LispyError {
	e := &LispyError{Name: string(kind), Message: message, Data: Nil}
	if data != nil {
		e.Data = *data
	}
	e.cause = pkgerrors.WithStack(fmt.Errorf("%s", e.Error()))
	return e
}

// raise panics with a *LispyError of the given kind. This is the single
// choke point every builtin and evaluator error path uses; see
// interpreter_ops.go's fail() in the teacher for the analogous pattern.
func raise(kind ErrorKind, format string, args ...interface{}) {
	panic(newLispyError(kind, fmt.Sprintf(format, args...), nil))
}

// raiseValue re-panics an already-constructed error Value (used by the
// `error` builtin, which raises whatever Value it is given verbatim).
func raiseValue(v Value) {
	if v.Tag == TagError {
		panic(v.AsError())
	}
	panic(newLispyError(ErrCustom, ToDisplayString(v), &v))
}

// recoverAsValue turns a recovered *LispyError panic into a Value error
// payload; any other recovered value (an unrelated Go panic) is re-panicked.
func recoverAsValue(r interface{}) Value {
	switch e := r.(type) {
	case *LispyError:
		return ErrorValue(e)
	default:
		panic(r)
	}
}

// SourcePos is a 1-based line/column, shared by lexer and reader errors.
type SourcePos struct {
	Line int
	Col  int
}

// LexError is raised by the lexer (spec.md §4.A): premature end of input
// inside a string token.
type LexError struct {
	Pos SourcePos
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// ParseError is raised by the reader (spec.md §4.B): missing matching
// closer, or an empty token stream where a form was expected.
type ParseError struct {
	Pos SourcePos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// WrapErrorWithSource renders a *LexError or *ParseError as a multi-line,
// caret-annotated snippet of src. Any other error is returned unchanged.
// This is grounded on the teacher's WrapErrorWithSource/
// prettyErrorStringLabeled (errors.go), generalized to Lispy's own error
// types and shortened to a single unnamed-source variant, since the core
// has no notion of a module path (spec.md explicitly leaves module loading
// to a self-hosted extension).
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", caretSnippet("LEXICAL ERROR", src, e.Pos.Line, e.Pos.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", caretSnippet("PARSE ERROR", src, e.Pos.Line, e.Pos.Col, e.Msg))
	default:
		return err
	}
}

func caretSnippet(header, src string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	pad := col - 1
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", pad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
