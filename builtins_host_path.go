// builtins_host_path.go — path:* procedures, grounded on the teacher's
// builtin_path.go, mapped 1:1 onto path/filepath since MindScript's own
// path builtins are themselves thin filepath wrappers.
package lispy

import "path/filepath"

func registerHostPath(env *Env) {
	RegisterProcedure(env, "path:join", func(args []Value) Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.AsString()
		}
		return String(filepath.Join(parts...))
	})

	RegisterProcedure(env, "path:base", func(args []Value) Value {
		requireArity("path:base", args, 1, 1)
		return String(filepath.Base(args[0].AsString()))
	})

	RegisterProcedure(env, "path:dir", func(args []Value) Value {
		requireArity("path:dir", args, 1, 1)
		return String(filepath.Dir(args[0].AsString()))
	})

	RegisterProcedure(env, "path:ext", func(args []Value) Value {
		requireArity("path:ext", args, 1, 1)
		return String(filepath.Ext(args[0].AsString()))
	})

	RegisterProcedure(env, "path:abs", func(args []Value) Value {
		requireArity("path:abs", args, 1, 1)
		abs, err := filepath.Abs(args[0].AsString())
		if err != nil {
			raise(ErrInvalidOperation, "path:abs: %s", err)
		}
		return String(abs)
	})

	RegisterProcedure(env, "path:clean", func(args []Value) Value {
		requireArity("path:clean", args, 1, 1)
		return String(filepath.Clean(args[0].AsString()))
	})
}
