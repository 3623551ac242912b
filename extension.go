// extension.go — the host extension surface (spec.md §4.F, component G).
//
// Two hooks suffice, per spec: registering primitive procedures (plain or
// environment-aware), and first-class Environment values so Lispy code can
// build alternative evaluators without touching the core. This mirrors the
// teacher's RegisterNative (interpreter.go) narrowed to Lispy's simpler
// (untyped) calling convention, plus a MemberCallable trait formalizing the
// "member-call fallback" design note from spec.md §9.
package lispy

// RegisterProcedure installs a host-provided Procedure under name in env
// (local frame). This is the plain half of the extension surface: the
// handler only ever sees the evaluated argument list.
func RegisterProcedure(env *Env, name string, handler func(args []Value) Value) {
	env.Define(name, ProcedureValue(&Procedure{Name: name, Handler: handler}))
}

// RegisterSpecial installs a host-provided SpecialProcedure under name in
// env. Unlike RegisterProcedure, the handler also receives the caller's
// current environment — this is what lets `env:current` (builtins_env.go)
// observe where it was called from without any special-casing in the
// evaluator itself.
func RegisterSpecial(env *Env, name string, handler func(args []Value, env *Env) Value) {
	env.Define(name, SpecialProcedureValue(&SpecialProcedure{Name: name, Handler: handler}))
}

// MemberCallable is implemented by values that support the "member-call
// fallback" application rule from spec.md §4.C: applying a value that is
// not itself a procedure/lambda/macro, but does implement MemberCallable,
// treats the stringified first argument as a member name and the rest as
// that member's arguments. Only Dict and *Env implement this; every other
// non-callable value raises InvalidOperation on application.
type MemberCallable interface {
	CallMember(name string, args []Value) Value
}
