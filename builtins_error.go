// builtins_error.go — the error:* family (spec.md §4.E, §7), grounded on
// the teacher's rtErr-to-Value bridging in interpreter_ops.go, generalized
// to Lispy's fixed ErrorKind taxonomy (errors.go) plus an open `Custom`
// escape hatch for host- and user-raised errors.
package lispy

func asLispyError(op string, v Value) *LispyError {
	if v.Tag != TagError {
		raise(ErrInvalidArgument, "%s: expected an error, got %s", op, ToDebugString(v))
	}
	return v.AsError()
}

func registerErrorProcedures(env *Env) {
	// `error` raises its argument as an error verbatim (spec.md §4.E): the
	// usual call shape is `(error (error:custom name message))`, but any
	// value is accepted — raiseValue wraps non-error values as a Custom
	// error whose message is the value's display form.
	RegisterProcedure(env, "error", func(args []Value) Value {
		requireArity("error", args, 1, 1)
		raiseValue(args[0])
		return Nil
	})

	// `error:custom` constructs (but does not raise) an Error(name, message)
	// value, per spec.md §8 scenario 6:
	// `(error:custom 'Oops "x")` then `(error:name it) = 'Oops`. An optional
	// third argument is carried as the error's `data` payload.
	RegisterProcedure(env, "error:custom", func(args []Value) Value {
		requireArityRange("error:custom", args, 1, 3)
		name := bindingName(args[0])
		msg := ""
		if len(args) >= 2 {
			if args[1].Tag != TagString {
				raise(ErrInvalidArgument, "error:custom: message must be a string, got %s", ToDebugString(args[1]))
			}
			msg = args[1].AsString()
		}
		var data Value = Nil
		if len(args) == 3 {
			data = args[2]
		}
		e := newLispyError(ErrorKind(name), msg, &data)
		return ErrorValue(e)
	})

	RegisterProcedure(env, "error:name", func(args []Value) Value {
		requireArity("error:name", args, 1, 1)
		return Symbol(asLispyError("error:name", args[0]).Name)
	})

	RegisterProcedure(env, "error:message", func(args []Value) Value {
		requireArity("error:message", args, 1, 1)
		return String(asLispyError("error:message", args[0]).Message)
	})

	RegisterProcedure(env, "error:data", func(args []Value) Value {
		requireArity("error:data", args, 1, 1)
		return asLispyError("error:data", args[0]).Data
	})

	RegisterProcedure(env, "error:code", func(args []Value) Value {
		requireArity("error:code", args, 1, 1)
		e := asLispyError("error:code", args[0])
		if e.Code == "" {
			return Nil
		}
		return String(e.Code)
	})

	RegisterProcedure(env, "error?", func(args []Value) Value {
		requireArity("error?", args, 1, 1)
		return Bool(args[0].Tag == TagError)
	})
}
