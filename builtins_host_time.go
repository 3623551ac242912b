// builtins_host_time.go — time:* procedures, grounded on the teacher's
// builtin_time.go, generalized from MindScript's typed Time struct value to
// Lispy's untyped model: instants are plain millisecond-epoch Numbers, and
// formatting/parsing goes through Go's reference-layout strings directly.
package lispy

import "time"

func registerHostTime(env *Env) {
	RegisterProcedure(env, "time:now", func(args []Value) Value {
		requireArity("time:now", args, 0, 0)
		return Number(float64(time.Now().UnixMilli()))
	})

	RegisterProcedure(env, "time:format", func(args []Value) Value {
		requireArityRange("time:format", args, 1, 2)
		layout := time.RFC3339
		if len(args) == 2 {
			layout = args[1].AsString()
		}
		ms := int64(numArg("time:format", args[0]))
		return String(time.UnixMilli(ms).UTC().Format(layout))
	})

	RegisterProcedure(env, "time:parse", func(args []Value) Value {
		requireArityRange("time:parse", args, 1, 2)
		layout := time.RFC3339
		if len(args) == 2 {
			layout = args[1].AsString()
		}
		t, err := time.Parse(layout, args[0].AsString())
		if err != nil {
			raise(ErrInvalidArgument, "time:parse: %s", err)
		}
		return Number(float64(t.UnixMilli()))
	})

	RegisterProcedure(env, "time:sleep-ms", func(args []Value) Value {
		requireArity("time:sleep-ms", args, 1, 1)
		time.Sleep(time.Duration(numArg("time:sleep-ms", args[0])) * time.Millisecond)
		return Nil
	})
}
