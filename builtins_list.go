// builtins_list.go — list/tuple procedures (spec.md §4.E), grounded on the
// teacher's collection-normalization helpers (interpreter_ops.go's
// `__to_iter`), generalized from MindScript's array type to Lispy's
// List/Tuple pair. Lists and tuples are treated as immutable by the core
// (spec.md §5): every procedure here returns a new slice rather than
// mutating its argument in place.
package lispy

func sequenceOf(op string, v Value) []Value {
	switch v.Tag {
	case TagList:
		return v.AsList()
	case TagTuple:
		return v.AsTuple()
	default:
		raise(ErrInvalidArgument, "%s: expected a list or tuple, got %s", op, ToDebugString(v))
		return nil
	}
}

func registerListProcedures(env *Env) {
	RegisterProcedure(env, "list", func(args []Value) Value {
		return List(append([]Value{}, args...))
	})
	RegisterProcedure(env, "tuple", func(args []Value) Value {
		return Tuple(append([]Value{}, args...))
	})

	carCdr := func(name string) {
		RegisterProcedure(env, name, func(args []Value) Value {
			requireArity(name, args, 1, 1)
			seq := sequenceOf(name, args[0])
			if len(seq) == 0 {
				raise(ErrInvalidArgument, "%s: empty list", name)
			}
			if name == "car" || name == "head" {
				return seq[0]
			}
			return List(append([]Value{}, seq[1:]...))
		})
	}
	carCdr("car")
	carCdr("head")
	carCdr("cdr")
	carCdr("tail")

	RegisterProcedure(env, "cons", func(args []Value) Value {
		requireArity("cons", args, 2, 2)
		rest := sequenceOf("cons", args[1])
		out := make([]Value, 0, len(rest)+1)
		out = append(out, args[0])
		out = append(out, rest...)
		return List(out)
	})

	RegisterProcedure(env, "concat", func(args []Value) Value {
		var out []Value
		for _, a := range args {
			out = append(out, sequenceOf("concat", a)...)
		}
		return List(out)
	})

	RegisterProcedure(env, "length", func(args []Value) Value {
		requireArity("length", args, 1, 1)
		switch args[0].Tag {
		case TagString:
			return Number(float64(len([]rune(args[0].AsString()))))
		default:
			return Number(float64(len(sequenceOf("length", args[0]))))
		}
	})

	RegisterProcedure(env, "index", func(args []Value) Value {
		requireArity("index", args, 2, 2)
		seq := sequenceOf("index", args[0])
		i := int(numArg("index", args[1]))
		if i < 0 || i >= len(seq) {
			return Undefined
		}
		return seq[i]
	})

	RegisterProcedure(env, "last", func(args []Value) Value {
		requireArity("last", args, 1, 1)
		seq := sequenceOf("last", args[0])
		if len(seq) == 0 {
			raise(ErrInvalidArgument, "last: empty list")
		}
		return seq[len(seq)-1]
	})

	RegisterProcedure(env, "slice", func(args []Value) Value {
		requireArityRange("slice", args, 2, 3)
		seq := sequenceOf("slice", args[0])
		start := clampIndex(int(numArg("slice", args[1])), len(seq))
		end := len(seq)
		if len(args) == 3 {
			end = clampIndex(int(numArg("slice", args[2])), len(seq))
		}
		if start > end {
			start = end
		}
		return List(append([]Value{}, seq[start:end]...))
	})

	registerHigherOrder(env)
}

func clampIndex(i, n int) int {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}

// registerHigherOrder wires map/each/reduce, which need Apply (eval.go) to
// invoke their callback argument from the caller's environment.
func registerHigherOrder(env *Env) {
	RegisterSpecial(env, "map", func(args []Value, callerEnv *Env) Value {
		requireArity("map", args, 2, 2)
		seq := sequenceOf("map", args[0])
		f := args[1]
		out := make([]Value, len(seq))
		for i, v := range seq {
			out[i] = Apply(f, []Value{v}, callerEnv)
		}
		return List(out)
	})

	RegisterSpecial(env, "each", func(args []Value, callerEnv *Env) Value {
		requireArity("each", args, 2, 2)
		seq := sequenceOf("each", args[0])
		f := args[1]
		for _, v := range seq {
			Apply(f, []Value{v}, callerEnv)
		}
		return Nil
	})

	RegisterSpecial(env, "reduce", func(args []Value, callerEnv *Env) Value {
		requireArityRange("reduce", args, 2, 3)
		seq := sequenceOf("reduce", args[0])
		f := args[1]
		var acc Value
		start := 0
		if len(args) == 3 {
			acc = args[2]
		} else {
			if len(seq) == 0 {
				raise(ErrInvalidArgument, "reduce: empty list with no initial value")
			}
			acc = seq[0]
			start = 1
		}
		for _, v := range seq[start:] {
			acc = Apply(f, []Value{acc, v}, callerEnv)
		}
		return acc
	})
}
