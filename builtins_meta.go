// builtins_meta.go — reflective procedures that cross the code/data
// boundary (spec.md §4.E: eval, parse, inspect), grounded on the teacher's
// self-hosting hooks in runtime.go, generalized to Lispy's Parse/Evaluate
// pair (reader.go, eval.go) rather than MindScript's bytecode compiler.
package lispy

func registerMetaProcedures(env *Env) {
	// eval is a SpecialProcedure so it evaluates its argument's expansion in
	// the caller's environment by default (spec.md §4.E), with an optional
	// explicit environment as a second argument.
	RegisterSpecial(env, "eval", func(args []Value, callerEnv *Env) Value {
		requireArityRange("eval", args, 1, 2)
		target := callerEnv
		if len(args) == 2 {
			target = asEnv("eval", args[1])
		}
		return Evaluate(args[0], target)
	})

	RegisterProcedure(env, "parse", func(args []Value) Value {
		requireArity("parse", args, 1, 1)
		if args[0].Tag != TagString {
			raise(ErrInvalidArgument, "parse: expected a string, got %s", ToDebugString(args[0]))
		}
		expr, err := Parse(args[0].AsString())
		if err != nil {
			raise(ErrParser, "%s", err.Error())
		}
		return expr
	})

	RegisterProcedure(env, "inspect", func(args []Value) Value {
		requireArity("inspect", args, 1, 1)
		return String(ToDebugString(args[0]))
	})
}
