// builtins_host_fs.go — fs:* filesystem procedures, grounded on the
// teacher's builtin_file.go (os_io_builtins.go's file-handle helpers),
// simplified from MindScript's stateful file-handle model to a synchronous
// whole-file read/write surface, since spec.md's process model has no
// notion of long-lived host handles surviving a call.
package lispy

import "os"

func registerHostFS(env *Env) {
	RegisterProcedure(env, "fs:read-file", func(args []Value) Value {
		requireArity("fs:read-file", args, 1, 1)
		data, err := os.ReadFile(args[0].AsString())
		if err != nil {
			raise(ErrInvalidOperation, "fs:read-file: %s", err)
		}
		return String(string(data))
	})

	RegisterProcedure(env, "fs:write-file", func(args []Value) Value {
		requireArity("fs:write-file", args, 2, 2)
		err := os.WriteFile(args[0].AsString(), []byte(args[1].AsString()), 0644)
		if err != nil {
			raise(ErrInvalidOperation, "fs:write-file: %s", err)
		}
		return Nil
	})

	RegisterProcedure(env, "fs:append-file", func(args []Value) Value {
		requireArity("fs:append-file", args, 2, 2)
		f, err := os.OpenFile(args[0].AsString(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			raise(ErrInvalidOperation, "fs:append-file: %s", err)
		}
		defer f.Close()
		if _, err := f.WriteString(args[1].AsString()); err != nil {
			raise(ErrInvalidOperation, "fs:append-file: %s", err)
		}
		return Nil
	})

	RegisterProcedure(env, "fs:exists?", func(args []Value) Value {
		requireArity("fs:exists?", args, 1, 1)
		_, err := os.Stat(args[0].AsString())
		return Bool(err == nil)
	})

	RegisterProcedure(env, "fs:remove", func(args []Value) Value {
		requireArity("fs:remove", args, 1, 1)
		if err := os.Remove(args[0].AsString()); err != nil {
			raise(ErrInvalidOperation, "fs:remove: %s", err)
		}
		return Nil
	})

	RegisterProcedure(env, "fs:mkdir", func(args []Value) Value {
		requireArity("fs:mkdir", args, 1, 1)
		if err := os.MkdirAll(args[0].AsString(), 0755); err != nil {
			raise(ErrInvalidOperation, "fs:mkdir: %s", err)
		}
		return Nil
	})

	RegisterProcedure(env, "fs:list-dir", func(args []Value) Value {
		requireArity("fs:list-dir", args, 1, 1)
		entries, err := os.ReadDir(args[0].AsString())
		if err != nil {
			raise(ErrInvalidOperation, "fs:list-dir: %s", err)
		}
		out := make([]Value, len(entries))
		for i, e := range entries {
			out[i] = String(e.Name())
		}
		return List(out)
	})

	RegisterProcedure(env, "fs:is-dir?", func(args []Value) Value {
		requireArity("fs:is-dir?", args, 1, 1)
		info, err := os.Stat(args[0].AsString())
		return Bool(err == nil && info.IsDir())
	})
}
