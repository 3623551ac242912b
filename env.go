// env.go — lexically scoped environments (spec.md §4.D).
//
// An Env is a mutable name→Value mapping with an optional parent pointer.
// `get`/`set`/`present` walk the parent chain; `define`/`update` always
// write to the local frame. This mirrors the teacher's `*Env{parent, table}`
// (interpreter.go) with one addition: `set` here does not implicitly
// define at the root the way some embedded-language runtimes do — spec.md
// §4.D requires `set!` to raise KeyNotFound when no ancestor already binds
// the name, and the invariant in spec.md §8 ("set! never creates a new
// binding") depends on that.
package lispy

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// envCount is a process-wide counter of environments created, exposed via
// kernel:env-count (spec.md §4.D: "a process-wide counter of
// environments created may be exposed").
var envCount int64

// EnvCount returns the number of Env values created since process start.
func EnvCount() int64 { return atomic.LoadInt64(&envCount) }

// Env is a single frame in the lexical chain.
type Env struct {
	members map[string]Value
	parent  *Env
}

// NewEnv creates a new environment with the given parent (nil for a root).
func NewEnv(parent *Env) *Env {
	atomic.AddInt64(&envCount, 1)
	return &Env{members: make(map[string]Value), parent: parent}
}

// Present reports whether name is visible from e (in e itself or any
// ancestor).
func (e *Env) Present(name string) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.members[name]; ok {
			return true
		}
	}
	return false
}

// Get walks the parent chain and returns the bound value, or raises
// KeyNotFound.
func (e *Env) Get(name string) Value {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.members[name]; ok {
			return v
		}
	}
	panic(newLispyError(ErrKeyNotFound, fmt.Sprintf("key not found: %s", name), nil))
}

// Define binds name to value in the local frame, shadowing any ancestor
// binding of the same name.
func (e *Env) Define(name string, value Value) Value {
	e.members[name] = value
	return value
}

// Set assigns to the nearest enclosing binding of name. It raises
// KeyNotFound if no frame in the chain already binds name; it never
// defines a new binding (spec.md §8 invariant).
func (e *Env) Set(name string, value Value) Value {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.members[name]; ok {
			cur.members[name] = value
			return value
		}
	}
	panic(newLispyError(ErrKeyNotFound, fmt.Sprintf("key not found: %s", name), nil))
}

// Update bulk-defines names to values in the local frame, pairwise. Extra
// names beyond len(values) are bound to Undefined; extra values are
// ignored.
func (e *Env) Update(names []string, values []Value) {
	for i, name := range names {
		if i < len(values) {
			e.members[name] = values[i]
		} else {
			e.members[name] = Undefined
		}
	}
}

// Keys returns every name visible from e, innermost frame first, walking
// out to the root. Duplicates (shadowed names) are included; the order
// within one call is stable but is otherwise implementation-defined, as
// permitted by spec.md §4.D.
func (e *Env) Keys() []string {
	var out []string
	for cur := e; cur != nil; cur = cur.parent {
		names := make([]string, 0, len(cur.members))
		for k := range cur.members {
			names = append(names, k)
		}
		sort.Strings(names)
		out = append(out, names...)
	}
	return out
}

// Parent returns e's parent, or nil for a root environment.
func (e *Env) Parent() *Env { return e.parent }

// TopLevel walks to and returns the root of e's chain.
func (e *Env) TopLevel() *Env {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Dump renders a debug view of the whole chain, innermost frame first, one
// line per binding as "name = <printed value>".
func (e *Env) Dump() string {
	var b strings.Builder
	depth := 0
	for cur := e; cur != nil; cur = cur.parent {
		fmt.Fprintf(&b, "-- frame %d --\n", depth)
		names := make([]string, 0, len(cur.members))
		for k := range cur.members {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			fmt.Fprintf(&b, "  %s = %s\n", k, ToDebugString(cur.members[k]))
		}
		depth++
	}
	return b.String()
}

// CallMember implements MemberCallable (extension.go) for first-class
// Environment values, so Lispy code can write `(e 'define 'a 1)` the same
// way it writes `(fs 'readFileSync path)` for a host Dict.
func (e *Env) CallMember(name string, args []Value) Value {
	// Both the bare name and the env:* standard-library name are accepted,
	// matching the same dual-naming Dict.CallMember uses (value.go).
	switch name {
	case "get", "env:get":
		requireArity("env.get", args, 1, 1)
		return e.Get(bindingName(args[0]))
	case "define", "env:define":
		requireArity("env.define", args, 2, 2)
		return e.Define(bindingName(args[0]), args[1])
	case "set", "set!", "env:set!":
		requireArity("env.set", args, 2, 2)
		return e.Set(bindingName(args[0]), args[1])
	case "present", "defined?", "env:defined?":
		requireArity("env.present", args, 1, 1)
		return Bool(e.Present(bindingName(args[0])))
	case "update", "env:update":
		requireArity("env.update", args, 2, 2)
		e.Update(symbolNames(args[0]), args[1].AsList())
		return Nil
	case "keys", "env:keys":
		requireArity("env.keys", args, 0, 0)
		names := e.Keys()
		out := make([]Value, len(names))
		for i, n := range names {
			out[i] = Symbol(n)
		}
		return List(out)
	case "parent", "env:parent":
		requireArity("env.parent", args, 0, 0)
		if p := e.Parent(); p != nil {
			return EnvValue(p)
		}
		return Nil
	case "parent?", "env:parent?":
		requireArity("env.parent?", args, 0, 0)
		return Bool(e.Parent() != nil)
	case "top_level", "toplevel", "env:toplevel":
		requireArity("env.top_level", args, 0, 0)
		return EnvValue(e.TopLevel())
	case "dump", "env:dump":
		requireArity("env.dump", args, 0, 0)
		return String(e.Dump())
	default:
		raise(ErrInvalidOperation, "environment has no member: %s", name)
		return Nil
	}
}

func symbolNames(v Value) []string {
	list := v.AsList()
	names := make([]string, len(list))
	for i, n := range list {
		names[i] = bindingName(n)
	}
	return names
}
