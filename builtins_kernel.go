// builtins_kernel.go — the kernel:* introspection family (spec.md §4.C
// debug mode, §4.D "a process-wide counter of environments created may be
// exposed"), grounded on the teacher's runtime introspection builtins
// (runtime.go's VM stat hooks), generalized from bytecode VM counters to
// the two counters Lispy's tree-walker actually has: the trace flag and the
// environment-allocation count.
package lispy

func registerKernelProcedures(env *Env) {
	RegisterProcedure(env, "kernel:debug?", func(args []Value) Value {
		requireArity("kernel:debug?", args, 0, 0)
		return Bool(DebugEnabled())
	})

	RegisterProcedure(env, "kernel:debug", func(args []Value) Value {
		requireArity("kernel:debug", args, 1, 1)
		SetDebug(args[0].Truthy())
		return Bool(DebugEnabled())
	})

	RegisterProcedure(env, "kernel:env-count", func(args []Value) Value {
		requireArity("kernel:env-count", args, 0, 0)
		return Number(float64(EnvCount()))
	})

	RegisterProcedure(env, "kernel:version", func(args []Value) Value {
		requireArity("kernel:version", args, 0, 0)
		return String(Version)
	})
}
