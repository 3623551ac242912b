// interpreter.go — the public embedding surface (spec.md §6).
//
// This is the thin, stable façade a host program actually calls:
// `Parse`, `Evaluate` (eval.go), `MakeStandardEnvironment`,
// `MakeEnvironment`, `RegisterProcedure`/`RegisterSpecial` (extension.go),
// and `SetDebug` (debug.go). It also bundles the ephemeral-vs-persistent
// evaluation split the teacher's Interpreter offers (interpreter.go:
// EvalSource vs EvalPersistentSource) so a REPL-style host has a natural
// place for top-level `define`s to accumulate.
package lispy

// Interpreter bundles a standard root environment with a persistent
// Global child, matching the teacher's Core/Global split.
type Interpreter struct {
	// Core is the standard environment populated by MakeStandardEnvironment.
	Core *Env
	// Global is a persistent child of Core; EvalPersistent* run directly in
	// it, so top-level defines accumulate across calls.
	Global *Env
}

// NewInterpreter returns a ready-to-use Interpreter with a populated Core
// and an empty persistent Global.
func NewInterpreter() *Interpreter {
	core := MakeStandardEnvironment()
	return &Interpreter{Core: core, Global: MakeEnvironment(core)}
}

// EvalSource parses and evaluates src in a fresh, throwaway child of
// Global: defines made by src do not leak into Global.
func (ip *Interpreter) EvalSource(src string) (v Value, err error) {
	defer recoverToError(&err)
	expr, perr := Parse(src)
	if perr != nil {
		return Nil, WrapErrorWithSource(perr, src)
	}
	return Evaluate(expr, NewEnv(ip.Global)), nil
}

// EvalPersistentSource parses and evaluates src directly in Global, so
// `define`/`set!` persist for subsequent calls (the REPL use case).
func (ip *Interpreter) EvalPersistentSource(src string) (v Value, err error) {
	defer recoverToError(&err)
	expr, perr := Parse(src)
	if perr != nil {
		return Nil, WrapErrorWithSource(perr, src)
	}
	return Evaluate(expr, ip.Global), nil
}

// EvalAST evaluates an already-parsed expression tree in an explicit
// environment, for hosts that want full control over scoping.
func (ip *Interpreter) EvalAST(expr Value, env *Env) (v Value, err error) {
	defer recoverToError(&err)
	return Evaluate(expr, env), nil
}

// recoverToError turns a recovered *LispyError panic into a returned Go
// error; any other panic value is re-raised, since it indicates a bug in
// the interpreter itself rather than a language-level error.
func recoverToError(err *error) {
	if r := recover(); r != nil {
		if le, ok := r.(*LispyError); ok {
			*err = le
			return
		}
		panic(r)
	}
}

// MakeStandardEnvironment returns a root environment populated with the
// standard procedure library (spec.md §4.E), as required by spec.md §6.
func MakeStandardEnvironment() *Env {
	env := NewEnv(nil)
	registerConstants(env)
	registerArithmetic(env)
	registerComparisons(env)
	registerConversions(env)
	registerLogical(env)
	registerPredicates(env)
	registerListProcedures(env)
	registerEnvProcedures(env)
	registerDictProcedures(env)
	registerMetaProcedures(env)
	registerClosureIntrospection(env)
	registerErrorProcedures(env)
	registerKernelProcedures(env)
	registerHostFS(env)
	registerHostTime(env)
	registerHostJSON(env)
	registerHostCompress(env)
	registerHostCrypto(env)
	registerHostEncoding(env)
	registerHostPath(env)
	registerHostNet(env)
	registerHostOS(env)
	return env
}

// MakeEnvironment returns a new child environment of parent (spec.md §6).
// A nil parent produces a fresh root, equivalent to NewEnv(nil).
func MakeEnvironment(parent *Env) *Env {
	return NewEnv(parent)
}

// Version is the embedding contract's version marker, surfaced to hosts
// that want to report it (e.g. cmd/lispy's REPL banner).
const Version = "0.1.0"
