// debug.go — the evaluator trace mode (spec.md §4.C "Debug mode"),
// grounded on the teacher's PC-mark tracing in debug_spans.go, generalized
// from bytecode program-counter marks to an indented tree-walk trace since
// Lispy has no bytecode (see DESIGN.md for why the VM itself was dropped).
package lispy

import (
	"fmt"
	"io"
	"os"
)

var (
	debugEnabled bool
	debugDepth   int
	debugWriter  io.Writer = os.Stderr
)

// SetDebug toggles the trace flag (spec.md §6: `set_debug(flag)`).
// Switching it must not change observable evaluation semantics — only
// evaluateTraced's side-channel logging differs from evaluate.
func SetDebug(flag bool) { debugEnabled = flag }

// DebugEnabled reports the current trace flag (backs `kernel:debug?`).
func DebugEnabled() bool { return debugEnabled }

// SetDebugWriter redirects the trace stream; hosts that embed Lispy in a
// non-stderr context (a REPL with its own log pane, a test) can supply
// their own io.Writer.
func SetDebugWriter(w io.Writer) { debugWriter = w }

// evaluateTraced wraps evaluate with an indented pair of lines per call:
// the expression before it is evaluated, then "-> value" once it returns.
func evaluateTraced(expr Value, env *Env) Value {
	indent := indentFor(debugDepth)
	fmt.Fprintf(debugWriter, "%s%s\n", indent, ToDebugString(expr))
	debugDepth++
	v := evaluate(expr, env)
	debugDepth--
	fmt.Fprintf(debugWriter, "%s  -> %s\n", indent, ToDebugString(v))
	return v
}

func indentFor(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
