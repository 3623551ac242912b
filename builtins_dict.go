// builtins_dict.go — dict:* procedures (spec.md §4.E), grounded on the
// teacher's object-literal builtins, generalized from MindScript's dynamic
// object type to Lispy's Dict (value.go), which supports both plain
// key/value storage and the member-call fallback (spec.md §9).
package lispy

func asDict(op string, v Value) *Dict {
	if v.Tag != TagDict {
		raise(ErrInvalidArgument, "%s: expected a dict, got %s", op, ToDebugString(v))
	}
	return v.AsDict()
}

func registerDictProcedures(env *Env) {
	RegisterProcedure(env, "dict:new", func(args []Value) Value {
		d := NewDict()
		if len(args)%2 != 0 {
			raise(ErrInvalidArgument, "dict:new: expected an even number of key/value arguments, got %d", len(args))
		}
		for i := 0; i < len(args); i += 2 {
			d.Set(bindingName(args[i]), args[i+1])
		}
		return DictValue(d)
	})

	RegisterProcedure(env, "dict:get", func(args []Value) Value {
		requireArity("dict:get", args, 2, 2)
		v, ok := asDict("dict:get", args[0]).Get(bindingName(args[1]))
		if !ok {
			return Undefined
		}
		return v
	})

	RegisterProcedure(env, "dict:set", func(args []Value) Value {
		requireArity("dict:set", args, 3, 3)
		d := asDict("dict:set", args[0])
		d.Set(bindingName(args[1]), args[2])
		return args[2]
	})

	RegisterProcedure(env, "dict:update", func(args []Value) Value {
		requireArity("dict:update", args, 3, 3)
		d := asDict("dict:update", args[0])
		name := bindingName(args[1])
		if !d.Has(name) {
			raise(ErrKeyNotFound, "dict:update: no such key: %s", name)
		}
		d.Set(name, args[2])
		return args[2]
	})

	RegisterProcedure(env, "dict:key?", func(args []Value) Value {
		requireArity("dict:key?", args, 2, 2)
		return Bool(asDict("dict:key?", args[0]).Has(bindingName(args[1])))
	})

	RegisterProcedure(env, "dict:keys", func(args []Value) Value {
		requireArity("dict:keys", args, 1, 1)
		keys := asDict("dict:keys", args[0]).Keys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = Symbol(k)
		}
		return List(out)
	})
}
