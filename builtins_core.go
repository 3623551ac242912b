// builtins_core.go — constants, arithmetic, comparisons, conversions,
// logical operators, print, and type predicates (spec.md §4.E), grounded
// on the teacher's registerCoreBuiltins (builtin_core.go) native-
// registration pattern, generalized from MindScript's typed ParamSpec
// signatures to Lispy's untyped variadic handlers (spec.md §9: "Implement
// [variadic primitives] as handlers that take a Value list and do their
// own arity checking, rather than faking polymorphism").
package lispy

import (
	"fmt"
	"os"
)

func registerConstants(env *Env) {
	env.Define("nil", Nil)
	env.Define("undefined", Undefined)
	env.Define("true", True)
	env.Define("false", False)
}

func registerArithmetic(env *Env) {
	RegisterProcedure(env, "+", func(args []Value) Value {
		if len(args) == 0 {
			return Number(0)
		}
		if len(args) == 1 {
			return Number(numArg("+", args[0]))
		}
		sum := numArg("+", args[0])
		for _, a := range args[1:] {
			sum += numArg("+", a)
		}
		return Number(sum)
	})

	RegisterProcedure(env, "*", func(args []Value) Value {
		if len(args) == 0 {
			return Number(1)
		}
		if len(args) == 1 {
			return Number(numArg("*", args[0]))
		}
		prod := numArg("*", args[0])
		for _, a := range args[1:] {
			prod *= numArg("*", a)
		}
		return Number(prod)
	})

	RegisterProcedure(env, "-", func(args []Value) Value {
		if len(args) == 0 {
			raise(ErrInvalidArgument, "-: expected at least 1 argument, got 0")
		}
		if len(args) == 1 {
			return Number(-numArg("-", args[0]))
		}
		diff := numArg("-", args[0])
		for _, a := range args[1:] {
			diff -= numArg("-", a)
		}
		return Number(diff)
	})

	RegisterProcedure(env, "/", func(args []Value) Value {
		if len(args) == 0 {
			raise(ErrInvalidArgument, "/: expected at least 1 argument, got 0")
		}
		if len(args) == 1 {
			return Number(1 / numArg("/", args[0]))
		}
		quot := numArg("/", args[0])
		for _, a := range args[1:] {
			quot /= numArg("/", a)
		}
		return Number(quot)
	})
}

func numArg(op string, v Value) float64 {
	if v.Tag != TagNumber {
		raise(ErrInvalidArgument, "%s: expected a number, got %s", op, ToDebugString(v))
	}
	return v.AsNumber()
}

func registerComparisons(env *Env) {
	binaryNum := func(name string, f func(a, b float64) bool) {
		RegisterProcedure(env, name, func(args []Value) Value {
			requireArity(name, args, 2, 2)
			return Bool(f(numArg(name, args[0]), numArg(name, args[1])))
		})
	}
	binaryNum("<", func(a, b float64) bool { return a < b })
	binaryNum("<=", func(a, b float64) bool { return a <= b })
	binaryNum(">", func(a, b float64) bool { return a > b })
	binaryNum(">=", func(a, b float64) bool { return a >= b })

	RegisterProcedure(env, "=", func(args []Value) Value {
		requireArity("=", args, 2, 2)
		return Bool(valueEquals(args[0], args[1]))
	})
	RegisterProcedure(env, "!=", func(args []Value) Value {
		requireArity("!=", args, 2, 2)
		return Bool(!valueEquals(args[0], args[1]))
	})
	RegisterProcedure(env, "===", func(args []Value) Value {
		requireArity("===", args, 2, 2)
		return Bool(valueIdentical(args[0], args[1]))
	})
	RegisterProcedure(env, "!==", func(args []Value) Value {
		requireArity("!==", args, 2, 2)
		return Bool(!valueIdentical(args[0], args[1]))
	})
}

// valueEquals implements `=`: value comparison, treating two symbols as
// equal iff their names match.
func valueEquals(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNil, TagUndefined:
		return true
	case TagBool:
		return a.AsBool() == b.AsBool()
	case TagNumber:
		return a.AsNumber() == b.AsNumber()
	case TagString:
		return a.AsString() == b.AsString()
	case TagSymbol:
		return a.AsSymbol() == b.AsSymbol()
	case TagList, TagTuple:
		la, lb := a.Data.([]Value), b.Data.([]Value)
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !valueEquals(la[i], lb[i]) {
				return false
			}
		}
		return true
	case TagError:
		return a.Data.(*LispyError) == b.Data.(*LispyError)
	default:
		return valueIdentical(a, b)
	}
}

// valueIdentical implements `===`: strict identity-like comparison
// suitable for the host's exact equality (pointer identity for the
// reference-shaped tags, value equality otherwise).
func valueIdentical(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagDict:
		return a.Data.(*Dict) == b.Data.(*Dict)
	case TagLambda, TagMacro:
		return a.Data.(*Lambda) == b.Data.(*Lambda)
	case TagProcedure:
		return a.Data.(*Procedure) == b.Data.(*Procedure)
	case TagSpecialProcedure:
		return a.Data.(*SpecialProcedure) == b.Data.(*SpecialProcedure)
	case TagEnvironment:
		return a.Data.(*Env) == b.Data.(*Env)
	case TagList, TagTuple:
		la, lb := a.Data.([]Value), b.Data.([]Value)
		if len(la) != len(lb) {
			return false
		}
		for i := range la {
			if !valueIdentical(la[i], lb[i]) {
				return false
			}
		}
		return true
	default:
		return valueEquals(a, b)
	}
}

func registerConversions(env *Env) {
	toS := func(args []Value) Value {
		requireArityRange("to_s", args, 1, 2)
		withQuotes := len(args) == 2 && args[1].Truthy()
		return String(ToStringOpt(args[0], withQuotes))
	}
	RegisterProcedure(env, "to_s", toS)
	RegisterProcedure(env, "to_string", toS)
}

func registerLogical(env *Env) {
	RegisterProcedure(env, "not", func(args []Value) Value {
		requireArity("not", args, 1, 1)
		return Bool(!args[0].Truthy())
	})
	// `and`/`or` here are plain (eagerly evaluated) procedures, since
	// spec.md lists them under the Standard Procedure Library rather than
	// the special-form table; short-circuiting sits in a self-hosted core
	// script layered on top of `if`, out of this core's scope.
	RegisterProcedure(env, "and", func(args []Value) Value {
		for _, a := range args {
			if !a.Truthy() {
				return Bool(false)
			}
		}
		return Bool(true)
	})
	RegisterProcedure(env, "or", func(args []Value) Value {
		for _, a := range args {
			if a.Truthy() {
				return Bool(true)
			}
		}
		return Bool(false)
	})
}

func registerPredicates(env *Env) {
	pred := func(name string, f func(Value) bool) {
		RegisterProcedure(env, name, func(args []Value) Value {
			requireArity(name, args, 1, 1)
			return Bool(f(args[0]))
		})
	}
	pred("list?", func(v Value) bool { return v.Tag == TagList })
	pred("null?", func(v Value) bool {
		switch v.Tag {
		case TagNil, TagUndefined:
			return true
		case TagList, TagTuple:
			return len(v.Data.([]Value)) == 0
		case TagString:
			return v.AsString() == ""
		default:
			return false
		}
	})
	pred("number?", func(v Value) bool { return v.Tag == TagNumber })
	pred("procedure?", func(v Value) bool {
		switch v.Tag {
		case TagProcedure, TagSpecialProcedure, TagLambda:
			return true
		default:
			return false
		}
	})
	pred("symbol?", func(v Value) bool { return v.Tag == TagSymbol })
	pred("lambda?", func(v Value) bool { return v.Tag == TagLambda })
	pred("macro?", func(v Value) bool { return v.Tag == TagMacro })
	pred("env?", func(v Value) bool { return v.Tag == TagEnvironment })

	RegisterProcedure(env, "typeof", func(args []Value) Value {
		requireArity("typeof", args, 1, 1)
		return Symbol(typeName(args[0]))
	})

	RegisterProcedure(env, "print", func(args []Value) Value {
		parts := make([]interface{}, len(args))
		for i, a := range args {
			parts[i] = ToDisplayString(a)
		}
		line := fmt.Sprintln(parts...)
		fmt.Fprint(os.Stdout, line)
		return Nil
	})
}

func typeName(v Value) string {
	switch v.Tag {
	case TagUndefined:
		return "undefined"
	case TagNil:
		return "nil"
	case TagBool:
		// Not enumerated in spec.md §4.E's fixed typeof set; added so the
		// match stays exhaustive over every Value tag (see DESIGN.md).
		return "bool"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagSymbol:
		return "symbol"
	case TagList:
		return "list"
	case TagTuple, TagDict:
		return "object"
	case TagEnvironment:
		return "environment"
	case TagLambda:
		return "lambda"
	case TagMacro:
		return "macro"
	case TagProcedure:
		return "proc"
	case TagSpecialProcedure:
		return "sproc"
	case TagError:
		// Likewise not in spec.md §4.E's fixed set; see the TagBool case above.
		return "error"
	default:
		raise(ErrUnexpectedInput, "typeof: unrecognized value tag %d", v.Tag)
		return ""
	}
}
