// builtins_host_encoding.go — base64:*, hex:*, and url:* procedures,
// grounded on the teacher's builtin_url_enc.go, split into three small
// families instead of MindScript's single "encoding" namespace, matching
// spec.md §4.E's convention of one colon-prefixed family per host concern.
package lispy

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
)

func registerHostEncoding(env *Env) {
	RegisterProcedure(env, "base64:encode", func(args []Value) Value {
		requireArity("base64:encode", args, 1, 1)
		return String(base64.StdEncoding.EncodeToString([]byte(args[0].AsString())))
	})
	RegisterProcedure(env, "base64:decode", func(args []Value) Value {
		requireArity("base64:decode", args, 1, 1)
		out, err := base64.StdEncoding.DecodeString(args[0].AsString())
		if err != nil {
			raise(ErrInvalidArgument, "base64:decode: %s", err)
		}
		return String(string(out))
	})

	RegisterProcedure(env, "hex:encode", func(args []Value) Value {
		requireArity("hex:encode", args, 1, 1)
		return String(hex.EncodeToString([]byte(args[0].AsString())))
	})
	RegisterProcedure(env, "hex:decode", func(args []Value) Value {
		requireArity("hex:decode", args, 1, 1)
		out, err := hex.DecodeString(args[0].AsString())
		if err != nil {
			raise(ErrInvalidArgument, "hex:decode: %s", err)
		}
		return String(string(out))
	})

	RegisterProcedure(env, "url:encode", func(args []Value) Value {
		requireArity("url:encode", args, 1, 1)
		return String(url.QueryEscape(args[0].AsString()))
	})
	RegisterProcedure(env, "url:decode", func(args []Value) Value {
		requireArity("url:decode", args, 1, 1)
		out, err := url.QueryUnescape(args[0].AsString())
		if err != nil {
			raise(ErrInvalidArgument, "url:decode: %s", err)
		}
		return String(out)
	})

	RegisterProcedure(env, "url:parse", func(args []Value) Value {
		requireArity("url:parse", args, 1, 1)
		u, err := url.Parse(args[0].AsString())
		if err != nil {
			raise(ErrInvalidArgument, "url:parse: %s", err)
		}
		d := NewDict()
		d.Set("scheme", String(u.Scheme))
		d.Set("host", String(u.Hostname()))
		d.Set("port", String(u.Port()))
		d.Set("path", String(u.Path))
		d.Set("query", String(u.RawQuery))
		d.Set("fragment", String(u.Fragment))
		return DictValue(d)
	})
}
