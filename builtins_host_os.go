// builtins_host_os.go — os:* procedures (env vars, args, exit), grounded
// on the teacher's builtin_sys.go, narrowed to the process-level
// primitives that make sense for an embedded language core (spec.md has no
// notion of subprocess spawning as a core feature).
package lispy

import "os"

func registerHostOS(env *Env) {
	RegisterProcedure(env, "os:getenv", func(args []Value) Value {
		requireArity("os:getenv", args, 1, 1)
		v, ok := os.LookupEnv(args[0].AsString())
		if !ok {
			return Undefined
		}
		return String(v)
	})

	RegisterProcedure(env, "os:setenv", func(args []Value) Value {
		requireArity("os:setenv", args, 2, 2)
		if err := os.Setenv(args[0].AsString(), args[1].AsString()); err != nil {
			raise(ErrInvalidOperation, "os:setenv: %s", err)
		}
		return Nil
	})

	RegisterProcedure(env, "os:args", func(args []Value) Value {
		requireArity("os:args", args, 0, 0)
		out := make([]Value, len(os.Args))
		for i, a := range os.Args {
			out[i] = String(a)
		}
		return List(out)
	})

	RegisterProcedure(env, "os:exit", func(args []Value) Value {
		requireArityRange("os:exit", args, 0, 1)
		code := 0
		if len(args) == 1 {
			code = int(numArg("os:exit", args[0]))
		}
		os.Exit(code)
		return Nil
	})
}
