// builtins_host_compress.go — gzip:* procedures, grounded on the teacher's
// builtin_compression.go, generalized from MindScript's Bytes value tag
// (which Lispy has no equivalent of) to plain Lispy strings holding raw
// bytes, matching how the rest of the standard procedure library treats
// binary payloads (see builtins_host_encoding.go's base64:*/hex:*).
package lispy

import (
	"bytes"
	"compress/gzip"
	"io"
)

func registerHostCompress(env *Env) {
	RegisterProcedure(env, "gzip:compress", func(args []Value) Value {
		requireArity("gzip:compress", args, 1, 1)
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write([]byte(args[0].AsString())); err != nil {
			raise(ErrInvalidOperation, "gzip:compress: %s", err)
		}
		if err := w.Close(); err != nil {
			raise(ErrInvalidOperation, "gzip:compress: %s", err)
		}
		return String(buf.String())
	})

	RegisterProcedure(env, "gzip:decompress", func(args []Value) Value {
		requireArity("gzip:decompress", args, 1, 1)
		r, err := gzip.NewReader(bytes.NewReader([]byte(args[0].AsString())))
		if err != nil {
			raise(ErrInvalidOperation, "gzip:decompress: %s", err)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			raise(ErrInvalidOperation, "gzip:decompress: %s", err)
		}
		return String(string(out))
	})
}
