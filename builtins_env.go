// builtins_env.go — first-class environment procedures (spec.md §4.E,
// "env:*" family), grounded on the teacher's Environment-as-Value handling
// in interpreter_ops.go, generalized to Lispy's Env.CallMember dispatch
// (env.go) rather than MindScript's dedicated opcode set.
package lispy

func asEnv(op string, v Value) *Env {
	if v.Tag != TagEnvironment {
		raise(ErrInvalidArgument, "%s: expected an environment, got %s", op, ToDebugString(v))
	}
	return v.AsEnv()
}

func registerEnvProcedures(env *Env) {
	// env:current is the only member of this family that needs the caller's
	// environment rather than an explicit argument, so it is a
	// SpecialProcedure (spec.md §4.C: special procedures receive callerEnv).
	RegisterSpecial(env, "env:current", func(args []Value, callerEnv *Env) Value {
		requireArity("env:current", args, 0, 0)
		return EnvValue(callerEnv)
	})

	RegisterProcedure(env, "env:new", func(args []Value) Value {
		requireArityRange("env:new", args, 0, 1)
		var parent *Env
		if len(args) == 1 && !args[0].IsNil() {
			parent = asEnv("env:new", args[0])
		}
		return EnvValue(NewEnv(parent))
	})

	RegisterProcedure(env, "env:get", func(args []Value) Value {
		requireArity("env:get", args, 2, 2)
		return asEnv("env:get", args[0]).Get(bindingName(args[1]))
	})

	RegisterProcedure(env, "env:define", func(args []Value) Value {
		requireArity("env:define", args, 3, 3)
		return asEnv("env:define", args[0]).Define(bindingName(args[1]), args[2])
	})

	RegisterProcedure(env, "env:defined?", func(args []Value) Value {
		requireArity("env:defined?", args, 2, 2)
		return Bool(asEnv("env:defined?", args[0]).Present(bindingName(args[1])))
	})

	RegisterProcedure(env, "env:set!", func(args []Value) Value {
		requireArity("env:set!", args, 3, 3)
		return asEnv("env:set!", args[0]).Set(bindingName(args[1]), args[2])
	})

	RegisterProcedure(env, "env:update", func(args []Value) Value {
		requireArity("env:update", args, 3, 3)
		target := asEnv("env:update", args[0])
		target.Update(symbolNames(args[1]), sequenceOf("env:update", args[2]))
		return Nil
	})

	RegisterProcedure(env, "env:parent", func(args []Value) Value {
		requireArity("env:parent", args, 1, 1)
		p := asEnv("env:parent", args[0]).Parent()
		if p == nil {
			return Nil
		}
		return EnvValue(p)
	})

	RegisterProcedure(env, "env:parent?", func(args []Value) Value {
		requireArity("env:parent?", args, 1, 1)
		return Bool(asEnv("env:parent?", args[0]).Parent() != nil)
	})

	RegisterProcedure(env, "env:toplevel", func(args []Value) Value {
		requireArity("env:toplevel", args, 1, 1)
		return EnvValue(asEnv("env:toplevel", args[0]).TopLevel())
	})

	RegisterProcedure(env, "env:keys", func(args []Value) Value {
		requireArity("env:keys", args, 1, 1)
		names := asEnv("env:keys", args[0]).Keys()
		out := make([]Value, len(names))
		for i, n := range names {
			out[i] = Symbol(n)
		}
		return List(out)
	})

	RegisterProcedure(env, "env:dump", func(args []Value) Value {
		requireArity("env:dump", args, 1, 1)
		return String(asEnv("env:dump", args[0]).Dump())
	})
}
