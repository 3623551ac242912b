// eval.go — the trampolined tree-walking evaluator (spec.md §4.C,
// component E).
//
// Evaluate implements the dispatch/application rules from spec.md §4.C as
// a single `for { ... }` loop over a mutable (expr, env) pair, rewriting
// tail positions in place instead of recursing into the Go call stack.
// The loop shape is grounded on `bshepherdson-mal`'s step9_try Eval
// function; error propagation uses Go panic/recover the way the teacher's
// interpreter_ops.go does with rtErr/fail(), rather than a package-level
// error variable (mal's older, less idiomatic approach).
package lispy

import "fmt"

// specialForms is the fixed set of operators that receive their operands
// unevaluated, per spec.md §4.C's table.
var specialForms = map[string]bool{
	"quote": true, "if": true, "define": true, "defined?": true,
	"set!": true, "lambda": true, "macro": true, "begin": true, "try": true,
}

// Evaluate runs expr in env to a Value, per spec.md §6's embedding
// contract. It panics with a *LispyError on failure; callers that want a
// Go `error` should use the Interpreter wrapper in interpreter.go, which
// recovers at this boundary.
func Evaluate(expr Value, env *Env) Value {
	if debugEnabled {
		return evaluateTraced(expr, env)
	}
	return evaluate(expr, env)
}

// evaluate is the untraced trampoline. evaluateTraced (debug.go) wraps
// each Evaluate call (not each tail iteration of this loop) with indented
// trace lines without changing observable semantics, per spec.md §4.C's
// "Debug mode".
func evaluate(expr Value, env *Env) Value {
	for {
		switch expr.Tag {
		case TagUndefined, TagNil:
			return expr

		case TagSymbol:
			return env.Get(expr.AsSymbol())

		case TagList:
			list := expr.AsList()
			if len(list) == 0 {
				return expr
			}
			head := list[0]
			if head.Tag == TagSymbol && specialForms[head.AsSymbol()] {
				nextExpr, nextEnv, result, isTail := evalSpecialForm(head.AsSymbol(), list[1:], env)
				if !isTail {
					return result
				}
				expr, env = nextExpr, nextEnv
				continue
			}

			proc := Evaluate(head, env)
			rawArgs := list[1:]

			if proc.Tag == TagMacro {
				m := proc.AsLambda()
				callEnv := NewEnv(m.Env)
				bindParams(m.Params, rawArgs, callEnv)
				expanded := Evaluate(m.Body, callEnv)
				expr = expanded
				continue
			}

			args := evalArgs(rawArgs, env)

			switch proc.Tag {
			case TagLambda:
				l := proc.AsLambda()
				callEnv := NewEnv(l.Env)
				bindParams(l.Params, args, callEnv)
				expr, env = l.Body, callEnv
				continue
			case TagSpecialProcedure:
				return proc.AsSpecialProcedure().Handler(args, env)
			case TagProcedure:
				return proc.AsProcedure().Handler(args)
			case TagEnvironment, TagDict:
				return applyMemberCall(proc, args)
			default:
				raise(ErrInvalidOperation, "cannot apply non-callable value: %s", ToDebugString(proc))
			}

		default:
			// Atoms other than Symbol/List/Nil/Undefined are self-evaluating.
			return expr
		}
	}
}

// evalArgs evaluates each element of rawArgs left-to-right in env
// (non-tail position), per spec.md §5's ordering rule.
func evalArgs(rawArgs []Value, env *Env) []Value {
	args := make([]Value, len(rawArgs))
	for i, a := range rawArgs {
		args[i] = Evaluate(a, env)
	}
	return args
}

// evalSpecialForm handles one special form. When isTail is true, the
// caller must continue the trampoline loop with (nextExpr, nextEnv)
// instead of using result.
func evalSpecialForm(name string, operands []Value, env *Env) (nextExpr Value, nextEnv *Env, result Value, isTail bool) {
	switch name {
	case "quote":
		requireArity("quote", operands, 1, 1)
		return Value{}, nil, operands[0], false

	case "if":
		requireArityRange("if", operands, 2, 3)
		cond := Evaluate(operands[0], env)
		if cond.Truthy() {
			return operands[1], env, Value{}, true
		}
		if len(operands) == 3 {
			return operands[2], env, Value{}, true
		}
		return Value{}, nil, Nil, false

	case "define":
		requireArity("define", operands, 2, 2)
		name := bindingName(operands[0])
		v := Evaluate(operands[1], env)
		return Value{}, nil, env.Define(name, v), false

	case "defined?":
		requireArity("defined?", operands, 1, 1)
		name := bindingName(operands[0])
		return Value{}, nil, Bool(env.Present(name)), false

	case "set!":
		requireArity("set!", operands, 2, 2)
		name := bindingName(operands[0])
		v := Evaluate(operands[1], env)
		return Value{}, nil, env.Set(name, v), false

	case "lambda":
		requireArity("lambda", operands, 2, 2)
		return Value{}, nil, LambdaValue(&Lambda{Params: operands[0], Body: operands[1], Env: env}), false

	case "macro":
		requireArity("macro", operands, 2, 2)
		return Value{}, nil, MacroValue(&Lambda{Params: operands[0], Body: operands[1], Env: env, IsMacro: true}), false

	case "begin":
		if len(operands) == 0 {
			return Value{}, nil, Nil, false
		}
		for _, e := range operands[:len(operands)-1] {
			Evaluate(e, env)
		}
		return operands[len(operands)-1], env, Value{}, true

	case "try":
		requireArity("try", operands, 2, 2)
		return evalTry(operands[0], operands[1], env)

	default:
		raise(ErrUnexpectedInput, "unimplemented special form: %s", name)
		return Value{}, nil, Value{}, false
	}
}

// evalTry implements `(try E H)` (spec.md §4.C): evaluate E; on a raised
// error, apply H (which must reduce to a callable) to the error value,
// in tail position when H is a Lambda.
func evalTry(protected, handlerExpr Value, env *Env) (nextExpr Value, nextEnv *Env, result Value, isTail bool) {
	var errVal Value
	var recovered bool

	func() {
		defer func() {
			if r := recover(); r != nil {
				errVal = recoverAsValue(r)
				recovered = true
			}
		}()
		result = Evaluate(protected, env)
	}()

	if !recovered {
		return Value{}, nil, result, false
	}

	handler := evaluate(handlerExpr, env)
	switch handler.Tag {
	case TagLambda:
		l := handler.AsLambda()
		callEnv := NewEnv(l.Env)
		bindParams(l.Params, []Value{errVal}, callEnv)
		return l.Body, callEnv, Value{}, true
	case TagProcedure:
		return Value{}, nil, handler.AsProcedure().Handler([]Value{errVal}), false
	case TagSpecialProcedure:
		return Value{}, nil, handler.AsSpecialProcedure().Handler([]Value{errVal}, env), false
	default:
		raise(ErrInvalidArgument, "try handler must be callable, got: %s", ToDebugString(handler))
		return Value{}, nil, Value{}, false
	}
}

// bindingName extracts the string name used by define/defined?/set!,
// accepting a Symbol (its name) or a String (its contents); any other
// value raises InvalidArgument.
func bindingName(v Value) string {
	if v.Tag == TagSymbol {
		return v.AsSymbol()
	}
	if v.Tag == TagString {
		return v.AsString()
	}
	raise(ErrInvalidArgument, "expected a name, got: %s", ToDebugString(v))
	return ""
}

// bindParams implements spec.md §4.C's parameter-binding rule: a single
// Symbol binds variadically to the whole argument list; a List of Symbols
// binds positionally, with unsupplied parameters defaulting to Undefined
// and extra arguments ignored.
func bindParams(params Value, args []Value, env *Env) {
	switch params.Tag {
	case TagSymbol:
		env.Define(params.AsSymbol(), List(args))
	case TagList:
		names := params.AsList()
		for i, n := range names {
			if n.Tag != TagSymbol {
				raise(ErrInvalidArgument, "lambda parameter must be a symbol, got: %s", ToDebugString(n))
			}
			if i < len(args) {
				env.Define(n.AsSymbol(), args[i])
			} else {
				env.Define(n.AsSymbol(), Undefined)
			}
		}
	default:
		raise(ErrInvalidArgument, "lambda params must be a symbol or a list of symbols, got: %s", ToDebugString(params))
	}
}

// Apply invokes proc with an already-evaluated argument list, honoring
// every callable shape from spec.md §4.C's application rule (Lambda,
// Procedure, SpecialProcedure, and the Dict/Environment member-call
// fallback). callerEnv is only consulted for SpecialProcedure and is
// otherwise ignored; pass the environment the call logically originates
// from (map/each/reduce/eval and friends use the environment they were
// invoked from).
func Apply(proc Value, args []Value, callerEnv *Env) Value {
	switch proc.Tag {
	case TagLambda:
		l := proc.AsLambda()
		callEnv := NewEnv(l.Env)
		bindParams(l.Params, args, callEnv)
		return Evaluate(l.Body, callEnv)
	case TagMacro:
		raise(ErrInvalidOperation, "cannot Apply a macro directly; macros only expand at call sites")
		return Nil
	case TagProcedure:
		return proc.AsProcedure().Handler(args)
	case TagSpecialProcedure:
		return proc.AsSpecialProcedure().Handler(args, callerEnv)
	case TagEnvironment, TagDict:
		return applyMemberCall(proc, args)
	default:
		raise(ErrInvalidOperation, "cannot apply non-callable value: %s", ToDebugString(proc))
		return Nil
	}
}

// applyMemberCall implements the member-call fallback design note from
// spec.md §9: args[0] stringified names a member, the rest are that
// member's arguments.
func applyMemberCall(proc Value, args []Value) Value {
	if len(args) == 0 {
		raise(ErrInvalidArgument, "member call requires a member name as the first argument")
	}
	name := memberName(args[0])
	rest := args[1:]

	mc, ok := proc.Data.(MemberCallable)
	if !ok {
		raise(ErrInvalidOperation, "value does not support member calls: %s", ToDebugString(proc))
	}
	return mc.CallMember(name, rest)
}

func memberName(v Value) string {
	switch v.Tag {
	case TagString:
		return v.AsString()
	case TagSymbol:
		return v.AsSymbol()
	default:
		return ToDisplayString(v)
	}
}

// requireArity raises InvalidArgument unless len(operands) is exactly
// between min and max (inclusive); use requireArityRange when min != max.
func requireArity(form string, operands []Value, min, max int) {
	requireArityRange(form, operands, min, max)
}

func requireArityRange(form string, operands []Value, min, max int) {
	if len(operands) < min || len(operands) > max {
		raise(ErrInvalidArgument, "%s: %s", form, arityMessage(min, max, len(operands)))
	}
}

func arityMessage(min, max, got int) string {
	if min == max {
		return fmt.Sprintf("expected %d argument(s), got %d", min, got)
	}
	return fmt.Sprintf("expected between %d and %d argument(s), got %d", min, max, got)
}
