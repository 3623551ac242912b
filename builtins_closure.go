// builtins_closure.go — introspection into Lambda/Macro closures (spec.md
// §4.E, "lambda:*"/"macro:*" families), grounded on the teacher's closure
// disassembly helpers in introspection.go, generalized from bytecode chunks
// to Lispy's plain (Params, Body, Env) triple (value.go's Lambda struct).
package lispy

func asLambda(op string, v Value, wantMacro bool) *Lambda {
	if wantMacro && v.Tag != TagMacro {
		raise(ErrInvalidArgument, "%s: expected a macro, got %s", op, ToDebugString(v))
	}
	if !wantMacro && v.Tag != TagLambda {
		raise(ErrInvalidArgument, "%s: expected a lambda, got %s", op, ToDebugString(v))
	}
	return v.AsLambda()
}

func registerClosureIntrospection(env *Env) {
	registerClosureFamily(env, "lambda", false, LambdaValue)
	registerClosureFamily(env, "macro", true, MacroValue)
}

// registerClosureFamily wires the four accessors shared by lambda:* and
// macro:* (they differ only in tag and constructor), plus a `:new`
// constructor that builds a closure over the caller's environment.
func registerClosureFamily(env *Env, prefix string, isMacro bool, wrap func(*Lambda) Value) {
	RegisterSpecial(env, prefix+":new", func(args []Value, callerEnv *Env) Value {
		requireArityRange(prefix+":new", args, 2, 3)
		closEnv := callerEnv
		if len(args) == 3 {
			closEnv = asEnv(prefix+":new", args[2])
		}
		return wrap(&Lambda{Params: args[0], Body: args[1], Env: closEnv, IsMacro: isMacro})
	})

	RegisterProcedure(env, prefix+":args", func(args []Value) Value {
		requireArity(prefix+":args", args, 1, 1)
		return asLambda(prefix+":args", args[0], isMacro).Params
	})

	RegisterProcedure(env, prefix+":body", func(args []Value) Value {
		requireArity(prefix+":body", args, 1, 1)
		return asLambda(prefix+":body", args[0], isMacro).Body
	})

	RegisterProcedure(env, prefix+":env", func(args []Value) Value {
		requireArity(prefix+":env", args, 1, 1)
		return EnvValue(asLambda(prefix+":env", args[0], isMacro).Env)
	})

	// The evaluator behind every lambda/macro is Evaluate itself: Lispy has
	// no alternate evaluator strategies, so this returns a procedure value
	// wrapping Evaluate rather than a symbolic tag naming one of several
	// implementations. Hosts that build alternative evaluators (spec.md
	// §4.F) can override what a *specific* closure runs against by
	// constructing it with lambda:new over a custom Environment instead.
	RegisterProcedure(env, prefix+":evaluator", func(args []Value) Value {
		requireArity(prefix+":evaluator", args, 1, 1)
		asLambda(prefix+":evaluator", args[0], isMacro)
		return SpecialProcedureValue(&SpecialProcedure{
			Name: "evaluate",
			Handler: func(callArgs []Value, callerEnv *Env) Value {
				requireArity("evaluate", callArgs, 1, 1)
				return Evaluate(callArgs[0], callerEnv)
			},
		})
	})
}
